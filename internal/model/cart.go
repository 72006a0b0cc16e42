package model

import (
	"math"
	"time"
)

// CartItem is a single line of a cart document.
type CartItem struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
}

// Cart is the persisted per-user cart document.
type Cart struct {
	UserID    string     `json:"userId" db:"user_id"`
	Items     []CartItem `json:"items" db:"items"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// CartLine is a cart item joined with its catalogue entry at read time.
type CartLine struct {
	FoodID    string        `json:"foodId"`
	Quantity  int           `json:"quantity"`
	Food      FoodItem      `json:"food"`
	LineTotal int64         `json:"lineTotal"`
	Safety    *SafetyResult `json:"safety,omitempty"`
}

// CartResponse represents the response payload for a cart.
type CartResponse struct {
	UserID    string     `json:"userId"`
	Items     []CartLine `json:"items"`
	Subtotal  int64      `json:"subtotal"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// SetCartRequest is the full-replacement payload for a cart.
type SetCartRequest struct {
	Items []CartItem `json:"items"`
}

// AddCartItemRequest adds Quantity units of a food to the cart.
type AddCartItemRequest struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItemRequest sets the absolute quantity of a cart line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// MaxItemQuantity bounds the quantity of a single cart or order line.
const MaxItemQuantity = 999

// LineTotal returns price * quantity in minor units. Quantities outside
// 1..MaxItemQuantity yield ErrInvalidQuantity; a product that does not fit
// in int64 yields ErrAmountOutOfRange.
func LineTotal(price int64, quantity int) (int64, error) {
	if quantity < 1 || quantity > MaxItemQuantity {
		return 0, ErrInvalidQuantity
	}
	if price < 0 || price > math.MaxInt64/int64(quantity) {
		return 0, ErrAmountOutOfRange
	}
	return price * int64(quantity), nil
}

// AddAmount adds two non-negative amounts, failing instead of wrapping.
func AddAmount(a, b int64) (int64, error) {
	if a < 0 || b < 0 || a > math.MaxInt64-b {
		return 0, ErrAmountOutOfRange
	}
	return a + b, nil
}
