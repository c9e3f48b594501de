package apperrors

import (
	"fmt"
	"net/http"
)

// Error represents an application error carrying the HTTP status it maps to.
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

// Is matches errors by code and message, so a sentinel wrapped with a
// cause via Wrap still satisfies errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap attaches a cause to a sentinel without mutating it.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     err,
	}
}

// Credential errors
var (
	ErrMissingFields      = New(http.StatusBadRequest, "Some fields are missing", nil)
	ErrDuplicateUser      = New(http.StatusBadRequest, "User already has an account", nil)
	ErrNotRegistered      = New(http.StatusBadRequest, "User is not registered. Please register first.", nil)
	ErrInvalidCredentials = New(http.StatusBadRequest, "Password not matched", nil)
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid or expired token", nil)
)

// Resource errors
var (
	ErrUserNotFound     = New(http.StatusNotFound, "User not found", nil)
	ErrProductNotFound  = New(http.StatusNotFound, "Product not found", nil)
	ErrCartNotFound     = New(http.StatusNotFound, "Cart not found", nil)
	ErrProductNotInCart = New(http.StatusNotFound, "Product not found in cart", nil)
	ErrNoResults        = New(http.StatusNotFound, "No products found", nil)
)

// Generic errors
var ErrInternal = New(http.StatusInternalServerError, "Internal server error", nil)
