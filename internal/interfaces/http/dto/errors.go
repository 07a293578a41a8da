package dto

import "net/http"

// Error codes shared between domain errors and HTTP responses
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
// Codes not listed here fall back to 500.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:   http.StatusBadRequest,
	"INVALID_INPUT":     http.StatusBadRequest,
	"INVALID_TITLE":     http.StatusBadRequest,
	"INVALID_PRICE":     http.StatusBadRequest,
	"INVALID_CATEGORY":  http.StatusBadRequest,
	"INVALID_QUANTITY":  http.StatusBadRequest,
	"INVALID_USERNAME":  http.StatusBadRequest,
	"INVALID_PASSWORD":  http.StatusBadRequest,
	"INVALID_EMAIL":     http.StatusBadRequest,
	"INVALID_ROLE":      http.StatusBadRequest,
	"INVALID_CREW":      http.StatusBadRequest,
	"INVALID_STATUS":    http.StatusBadRequest,
	"INVALID_CUSTOMER":  http.StatusBadRequest,
	"INVALID_MENU_ITEM": http.StatusBadRequest,
	"EMPTY_CART":        http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:       http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,
	"ALREADY_DEACTIVATED": http.StatusConflict,

	// Business rule errors
	"INVALID_STATE": http.StatusUnprocessableEntity,

	// Checkout failures that are not the caller's fault
	"CHECKOUT_FAILED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
