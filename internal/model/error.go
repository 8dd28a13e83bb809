package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeMissingDeliveryDetails = "MISSING_DELIVERY_DETAILS"
	ErrCodeEmptyCart              = "EMPTY_CART"
	ErrCodeRestaurantNotFound     = "RESTAURANT_NOT_FOUND"
	ErrCodeInvalidQuantity        = "INVALID_QUANTITY"
	ErrCodeOrderSubmissionFailed  = "ORDER_SUBMISSION_FAILED"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// DomainError carries a stable code for failures surfaced to the user.
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
	ErrMissingDeliveryDetails = NewDomainError(ErrCodeMissingDeliveryDetails, "Please fill in all delivery details")
	ErrEmptyCart              = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrOrderSubmission        = NewDomainError(ErrCodeOrderSubmissionFailed, "Failed to place order. Please try again")
)
