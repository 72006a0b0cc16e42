package service

import (
	"context"

	"food-kart/internal/model"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// FoodService defines read operations on the catalogue.
type FoodService interface {
	// GetAll retrieves foods with pagination, optionally filtered by category.
	GetAll(ctx context.Context, category string, limit, offset int) ([]model.FoodItem, error)

	// GetByID retrieves a single food. Returns ErrFoodNotFound if absent.
	GetByID(ctx context.Context, id string) (*model.FoodItem, error)

	// CheckSafety evaluates a food against the user's health profile.
	CheckSafety(ctx context.Context, userID, foodID string) (*model.FoodSafetyResponse, error)
}

// CartService defines operations on a user's cart.
type CartService interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID string) (*model.CartResponse, error)

	// SetCartItems replaces the whole cart with the normalised items.
	SetCartItems(ctx context.Context, userID string, items []model.CartItem) (*model.CartResponse, error)

	// ClearCart empties the cart. Clearing an empty cart is a no-op.
	ClearCart(ctx context.Context, userID string) (*model.CartResponse, error)

	// AddItem adds quantity units of a food to the cart.
	AddItem(ctx context.Context, userID, foodID string, quantity int) (*model.CartResponse, error)

	// UpdateItemQuantity sets the quantity of one line. Zero or less removes it.
	UpdateItemQuantity(ctx context.Context, userID, foodID string, quantity int) (*model.CartResponse, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder checks out the user's cart into a pending order.
	// A non-empty idempotencyKey makes retries return the original order.
	CreateOrder(ctx context.Context, userID, idempotencyKey string) (*model.OrderResponse, error)

	// GetOrder retrieves one of the user's orders.
	GetOrder(ctx context.Context, userID string, id uuid.UUID) (*model.OrderResponse, error)

	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID string, limit, offset int) ([]model.OrderResponse, error)

	// UpdateStatus applies a status transition to an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) (*model.OrderResponse, error)
}

// HealthService defines operations on health profiles.
type HealthService interface {
	// GetProfile returns the user's profile or ErrProfileNotFound.
	GetProfile(ctx context.Context, userID string) (*model.HealthProfile, error)

	// UpsertProfile normalises and stores the user's profile.
	UpsertProfile(ctx context.Context, userID string, profile *model.HealthProfile) (*model.HealthProfile, error)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
