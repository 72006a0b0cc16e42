package repository

import (
	"context"

	"food-kart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FoodRepository defines the interface for catalogue data access operations.
type FoodRepository interface {
	// GetAll retrieves foods with pagination, optionally filtered by category.
	GetAll(ctx context.Context, category string, limit, offset int) ([]model.FoodItem, error)

	// GetByID retrieves a single food by its ID. Returns nil if absent.
	GetByID(ctx context.Context, id string) (*model.FoodItem, error)

	// GetByIDs retrieves the foods that exist among ids. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]model.FoodItem, error)

	// Upsert inserts or replaces foods by ID and returns the number written.
	Upsert(ctx context.Context, foods []model.FoodItem) (int, error)
}

// CartRepository defines the interface for per-user cart documents.
type CartRepository interface {
	// Get retrieves the cart of a user. Returns nil if the user has none yet.
	Get(ctx context.Context, userID string) (*model.Cart, error)

	// Save overwrites the cart document of a user, creating it if needed.
	Save(ctx context.Context, cart *model.Cart) error

	// GetForUpdate reads and row-locks the cart within tx. Returns nil if absent.
	GetForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*model.Cart, error)

	// ClearTx empties the cart within tx.
	ClearTx(ctx context.Context, tx pgx.Tx, userID string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// GetByIdempotencyKey retrieves the order a user placed with the given key.
	GetByIdempotencyKey(ctx context.Context, userID, key string) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Order, error)

	// GetItemsByOrderIDs retrieves the items of several orders keyed by order ID.
	GetItemsByOrderIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]model.OrderItem, error)

	// UpdateStatus moves an order from one status to another. It reports
	// false if the order was not in status from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.OrderStatus) (bool, error)
}

// HealthProfileRepository defines the interface for health profile storage.
type HealthProfileRepository interface {
	// Get retrieves the profile of a user. Returns nil if the user has none.
	Get(ctx context.Context, userID string) (*model.HealthProfile, error)

	// Upsert creates or replaces the profile of a user.
	Upsert(ctx context.Context, profile *model.HealthProfile) error
}
