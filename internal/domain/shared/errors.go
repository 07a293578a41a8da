package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Detail
}

// NewDomainError creates a new domain error
func NewDomainError(code, detail string) *DomainError {
	return &DomainError{
		Code:   code,
		Detail: detail,
	}
}

// Common domain errors
var (
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists  = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput   = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized   = NewDomainError("UNAUTHORIZED", "Not authenticated")
	ErrForbidden      = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState   = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrEmptyCart      = NewDomainError("EMPTY_CART", "The cart is empty")
	ErrCheckoutFailed = NewDomainError("CHECKOUT_FAILED", "Order could not be placed")
)
