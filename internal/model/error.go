package model

// ErrorKind classifies a domain error for HTTP status mapping.
type ErrorKind int

const (
	// KindValidation marks malformed or semantically invalid input.
	KindValidation ErrorKind = iota
	// KindNotFound marks a lookup for a missing entity.
	KindNotFound
	// KindInfrastructure marks a downstream failure (database, mail).
	KindInfrastructure
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidOTP       = "INVALID_OTP"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeEmptyOrder       = "EMPTY_ORDER"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a tagged error carrying a kind, a stable code, a
// client-safe message and the wrapped cause. Handlers map Kind to an
// HTTP status; the cause is logged server-side only.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, Message: message}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

// NewInfrastructureError creates an infrastructure error wrapping the cause.
func NewInfrastructureError(message string, err error) *DomainError {
	return &DomainError{Kind: KindInfrastructure, Code: ErrCodeInternalError, Message: message, Err: err}
}

// Common domain errors
var (
	ErrInvalidOTP      = NewValidationError(ErrCodeInvalidOTP, "Invalid or expired OTP")
	ErrProductNotFound = NewNotFoundError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound   = NewNotFoundError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity = NewValidationError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyOrder      = NewValidationError(ErrCodeEmptyOrder, "Order must contain at least one item")
)
