package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the machine-readable kind and
// the HTTP status it renders with.
type Error struct {
	Kind    string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"-"`
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

// Constructors for each error kind the API can return.

// Validation creates a 400 error for a malformed request
func Validation(message string, err error) *Error {
	return &Error{
		Kind:    "VALIDATION_ERROR",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// Conflict creates a 400 error for a duplicate username. Conflicts render
// as bad requests; the kind distinguishes the case for callers.
func Conflict(message string, err error) *Error {
	return &Error{
		Kind:    "CONFLICT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// InvalidCredentials creates a 400 error for a failed login
func InvalidCredentials(message string, err error) *Error {
	return &Error{
		Kind:    "INVALID_CREDENTIALS",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// NotFound creates a 404 error
func NotFound(message string, err error) *Error {
	return &Error{
		Kind:    "NOT_FOUND",
		Message: message,
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

// InvalidState creates a 400 error for an illegal ride transition
func InvalidState(message string, err error) *Error {
	return &Error{
		Kind:    "INVALID_STATE",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// Unauthorized creates a 401 error for a missing or invalid token
func Unauthorized(message string, err error) *Error {
	return &Error{
		Kind:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

// Forbidden creates a 403 error for a role mismatch
func Forbidden(message string, err error) *Error {
	return &Error{
		Kind:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

// Internal creates a 500 error
func Internal(message string, err error) *Error {
	return &Error{
		Kind:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// From attempts to convert an error to *Error, falling back to a generic
// internal error so no failure leaves the API unmapped.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// Is reports whether err carries the given kind.
func Is(err error, kind string) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
