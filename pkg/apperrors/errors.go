package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of e carrying err as its cause.
func Wrap(e *Error, err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Err: err}
}

// From extracts an *Error from err, falling back to ErrInternal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(ErrInternal, err)
}

// Common error types
var (
	ErrBadRequest   = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden    = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound     = New(http.StatusNotFound, "Not found", nil)
	ErrInternal     = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Authentication error types
var (
	ErrMissingToken       = New(http.StatusUnauthorized, "Access denied. No token provided.", nil)
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid token", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials", nil)
	ErrInvalidAdminSecret = New(http.StatusUnauthorized, "Invalid admin credentials", nil)
	ErrAdminRequired      = New(http.StatusForbidden, "Unauthorized: Admin access required", nil)
)

// User error types
var (
	ErrUserNotFound       = New(http.StatusNotFound, "User not found", nil)
	ErrUserExists         = New(http.StatusConflict, "User already exists", nil)
	ErrUsernameTaken      = New(http.StatusConflict, "Username already taken", nil)
	ErrInvalidAdminPass   = New(http.StatusForbidden, "Invalid admin password", nil)
	ErrMissingCredentials = New(http.StatusBadRequest, "Email or password is required", nil)
	ErrMissingUserPass    = New(http.StatusBadRequest, "Username and password are required", nil)
	ErrEmptyUsername      = New(http.StatusBadRequest, "Username cannot be empty", nil)
)

// Catalog and cart error types
var (
	ErrProductNotFound   = New(http.StatusNotFound, "Product not found", nil)
	ErrCartItemNotFound  = New(http.StatusNotFound, "Cart item not found", nil)
	ErrInsufficientStock = New(http.StatusBadRequest, "Insufficient stock", nil)
	ErrInvalidStock      = New(http.StatusBadRequest, "Invalid stock value", nil)
	ErrMissingFields     = New(http.StatusBadRequest, "Missing required fields", nil)
	ErrInvalidQuantity   = New(http.StatusBadRequest, "Quantity must be at least 1", nil)
)

// Order error types
var (
	ErrOrderNotFound  = New(http.StatusNotFound, "Order not found", nil)
	ErrNotOrderOwner  = New(http.StatusForbidden, "Unauthorized", nil)
	ErrOrderNotEdit   = New(http.StatusBadRequest, "Only pending orders can be edited", nil)
	ErrOrderNotCancel = New(http.StatusBadRequest, "Only pending orders can be cancelled", nil)
	ErrInvalidStatus  = New(http.StatusBadRequest, "Invalid status value", nil)
	ErrInvalidItems   = New(http.StatusBadRequest, "Invalid items", nil)
)
