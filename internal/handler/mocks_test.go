package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"food-kart/internal/auth"
	"food-kart/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFoodService is a mock implementation of FoodService.
type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) GetAll(ctx context.Context, category string, limit, offset int) ([]model.FoodItem, error) {
	args := m.Called(ctx, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockFoodService) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodService) CheckSafety(ctx context.Context, userID, foodID string) (*model.FoodSafetyResponse, error) {
	args := m.Called(ctx, userID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodSafetyResponse), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) cart(args mock.Arguments) (*model.CartResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) GetCart(ctx context.Context, userID string) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, userID))
}

func (m *MockCartService) SetCartItems(ctx context.Context, userID string, items []model.CartItem) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, userID, items))
}

func (m *MockCartService) ClearCart(ctx context.Context, userID string) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, userID))
}

func (m *MockCartService) AddItem(ctx context.Context, userID, foodID string, quantity int) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, userID, foodID, quantity))
}

func (m *MockCartService) UpdateItemQuantity(ctx context.Context, userID, foodID string, quantity int) (*model.CartResponse, error) {
	return m.cart(m.Called(ctx, userID, foodID, quantity))
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID, idempotencyKey string) (*model.OrderResponse, error) {
	args := m.Called(ctx, userID, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, userID string, id uuid.UUID) (*model.OrderResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID string, limit, offset int) ([]model.OrderResponse, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) (*model.OrderResponse, error) {
	args := m.Called(ctx, id, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

// MockHealthService is a mock implementation of HealthService.
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) GetProfile(ctx context.Context, userID string) (*model.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthProfile), args.Error(1)
}

func (m *MockHealthService) UpsertProfile(ctx context.Context, userID string, profile *model.HealthProfile) (*model.HealthProfile, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthProfile), args.Error(1)
}

// newUserRequest builds a request that has passed JWT authentication.
func newUserRequest(method, target, userID string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if userID != "" {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	return req
}
