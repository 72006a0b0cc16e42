package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-kart/internal/model"
	"food-kart/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const uniqueViolation = "23505"

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	foodRepo  repository.FoodRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	foodRepo repository.FoodRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		foodRepo:  foodRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder converts the user's cart into a pending order.
//
// The cart row is locked for the whole checkout; items are priced from the
// current catalogue, and the order, its lines and the emptied cart commit
// together.
func (s *orderService) CreateOrder(ctx context.Context, userID, idempotencyKey string) (*model.OrderResponse, error) {
	if idempotencyKey != "" {
		if resp, err := s.replay(ctx, userID, idempotencyKey); err != nil || resp != nil {
			return resp, err
		}
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	cart, err := s.cartRepo.GetForUpdate(ctx, tx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to lock cart")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// A concurrent checkout with the same key may have committed while we
	// waited for the lock.
	if idempotencyKey != "" {
		var resp *model.OrderResponse
		resp, err = s.replay(ctx, userID, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			err = errReplayed
			return resp, nil
		}
	}

	if cart == nil || len(cart.Items) == 0 {
		err = model.ErrEmptyCart
		return nil, err
	}

	ids := make([]string, len(cart.Items))
	for i, item := range cart.Items {
		ids[i] = item.FoodID
	}

	foods, err := s.foodRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to resolve cart foods")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	byID := make(map[string]model.FoodItem, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    model.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if idempotencyKey != "" {
		key := idempotencyKey
		order.IdempotencyKey = &key
	}

	orderItems := make([]model.OrderItem, 0, len(cart.Items))
	resolved := make([]model.FoodItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		food, ok := byID[item.FoodID]
		if !ok || item.Quantity <= 0 {
			s.logger.Warn().
				Str("user_id", userID).
				Str("food_id", item.FoodID).
				Msg("skipping unresolvable cart item")
			continue
		}
		lineTotal, lineErr := model.LineTotal(food.Price, item.Quantity)
		if lineErr == nil {
			order.Total, lineErr = model.AddAmount(order.Total, lineTotal)
		}
		if lineErr != nil {
			s.logger.Warn().
				Err(lineErr).
				Str("user_id", userID).
				Str("food_id", item.FoodID).
				Int("quantity", item.Quantity).
				Msg("cart line out of range")
			err = lineErr
			return nil, err
		}
		orderItems = append(orderItems, model.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			FoodID:          item.FoodID,
			Quantity:        item.Quantity,
			PriceAtPurchase: food.Price,
		})
		resolved = append(resolved, food)
	}

	if len(orderItems) == 0 {
		err = model.ErrEmptyCart
		return nil, err
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		if idempotencyKey != "" && isUniqueViolation(err) {
			s.logger.Info().
				Str("user_id", userID).
				Msg("duplicate checkout resolved to stored order")
			return s.replay(ctx, userID, idempotencyKey)
		}
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = s.cartRepo.ClearTx(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", userID).
		Int("item_count", len(orderItems)).
		Int64("total", order.Total).
		Msg("order created successfully")

	return toOrderResponse(order, orderItems, resolved), nil
}

// GetOrder retrieves an order owned by userID.
func (s *orderService) GetOrder(ctx context.Context, userID string, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil || order.UserID != userID {
		s.logger.Debug().Str("order_id", id.String()).Str("user_id", userID).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return s.withFoods(ctx, order, items)
}

// ListOrders retrieves the user's orders with their line items.
func (s *orderService) ListOrders(ctx context.Context, userID string, limit, offset int) ([]model.OrderResponse, error) {
	limit, offset = clampPage(limit, offset)

	orders, err := s.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]model.OrderResponse, 0, len(orders))
	if len(orders) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	itemsByOrder, err := s.orderRepo.GetItemsByOrderIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get order items")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	foodIDs := []string{}
	seen := map[string]bool{}
	for _, items := range itemsByOrder {
		for _, item := range items {
			if !seen[item.FoodID] {
				seen[item.FoodID] = true
				foodIDs = append(foodIDs, item.FoodID)
			}
		}
	}

	foods, err := s.foodRepo.GetByIDs(ctx, foodIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to retrieve food details")
		return nil, fmt.Errorf("failed to retrieve food details: %w", err)
	}
	byID := make(map[string]model.FoodItem, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	for i := range orders {
		items := itemsByOrder[orders[i].ID]
		display := []model.FoodItem{}
		for _, item := range items {
			if f, ok := byID[item.FoodID]; ok {
				display = append(display, f)
			}
		}
		result = append(result, *toOrderResponse(&orders[i], items, display))
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("count", len(result)).
		Msg("listed orders")

	return result, nil
}

// UpdateStatus moves an order to next if the state machine allows it.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) (*model.OrderResponse, error) {
	if !next.Valid() {
		return nil, model.ErrInvalidStatus
	}

	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(next) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Msg("rejected status transition")
		return nil, model.ErrInvalidStatusTransition
	}

	ok, err := s.orderRepo.UpdateStatus(ctx, id, order.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !ok {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Msg("order status changed concurrently")
		return nil, model.ErrInvalidStatusTransition
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Msg("order status updated")

	order.Status = next
	return s.withFoods(ctx, order, items)
}

// errReplayed marks a checkout answered from a stored order so the open
// transaction is rolled back.
var errReplayed = errors.New("checkout replayed")

func (s *orderService) replay(ctx context.Context, userID, key string) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByIdempotencyKey(ctx, userID, key)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to look up idempotency key")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if order == nil {
		return nil, nil
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", userID).
		Msg("returning order for repeated idempotency key")

	return s.withFoods(ctx, order, items)
}

func (s *orderService) withFoods(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.OrderResponse, error) {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.FoodID
	}

	foods, err := s.foodRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to retrieve food details")
		return nil, fmt.Errorf("failed to retrieve food details: %w", err)
	}

	return toOrderResponse(order, items, foods), nil
}

func toOrderResponse(order *model.Order, items []model.OrderItem, foods []model.FoodItem) *model.OrderResponse {
	if items == nil {
		items = []model.OrderItem{}
	}
	if foods == nil {
		foods = []model.FoodItem{}
	}
	return &model.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     items,
		Foods:     foods,
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
