package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON             = "INVALID_JSON"
	ErrCodeMissingField            = "MISSING_FIELD"
	ErrCodeEmptyAfterValidation    = "EMPTY_AFTER_VALIDATION"
	ErrCodeEmptyCart               = "EMPTY_CART"
	ErrCodeFoodNotFound            = "FOOD_NOT_FOUND"
	ErrCodeOrderNotFound           = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity         = "INVALID_QUANTITY"
	ErrCodeAmountOutOfRange        = "AMOUNT_OUT_OF_RANGE"
	ErrCodeInvalidStatus           = "INVALID_STATUS"
	ErrCodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeInvalidHealthProfile    = "INVALID_HEALTH_PROFILE"
	ErrCodeProfileNotFound         = "PROFILE_NOT_FOUND"
	ErrCodeUnauthorised            = "UNAUTHORIZED"
	ErrCodeForbidden               = "FORBIDDEN"
	ErrCodeNotFound                = "NOT_FOUND"
	ErrCodeInternalError           = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyAfterValidation    = NewDomainError(ErrCodeEmptyAfterValidation, "None of the cart items refer to known foods")
	ErrEmptyCart               = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrFoodNotFound            = NewDomainError(ErrCodeFoodNotFound, "Food not found")
	ErrOrderNotFound           = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity         = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be between 1 and 999")
	ErrAmountOutOfRange        = NewDomainError(ErrCodeAmountOutOfRange, "Amount is too large")
	ErrInvalidStatus           = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrInvalidStatusTransition = NewDomainError(ErrCodeInvalidStatusTransition, "Order status transition is not allowed")
	ErrInvalidHealthProfile    = NewDomainError(ErrCodeInvalidHealthProfile, "Health profile limits must not be negative")
	ErrProfileNotFound         = NewDomainError(ErrCodeProfileNotFound, "Health profile not found")
)
