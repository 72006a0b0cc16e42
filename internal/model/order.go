package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// nextStatus is the happy-path successor of each non-terminal state.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:        OrderStatusConfirmed,
	OrderStatusConfirmed:      OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an order in state s may move to next.
// Progress is strictly linear; cancellation is allowed from any
// non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

// Order represents a placed customer order.
// Total is computed once at creation and never recomputed.
type Order struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	UserID         string      `json:"userId" db:"user_id"`
	Total          int64       `json:"total" db:"total"`
	Status         OrderStatus `json:"status" db:"status"`
	IdempotencyKey *string     `json:"-" db:"idempotency_key"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order with its frozen price.
type OrderItem struct {
	ID              uuid.UUID `json:"-" db:"id"`
	OrderID         uuid.UUID `json:"-" db:"order_id"`
	FoodID          string    `json:"foodId" db:"food_id"`
	Quantity        int       `json:"quantity" db:"quantity"`
	PriceAtPurchase int64     `json:"priceAtPurchase" db:"price_at_purchase"`
}

// OrderResponse represents the response payload for an order.
// Foods carries current catalogue data for display only.
type OrderResponse struct {
	ID        uuid.UUID   `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items"`
	Foods     []FoodItem  `json:"foods"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// UpdateOrderStatusRequest represents the payload of a status transition.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
