package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account creation errors
	ErrPasswordMismatch = NewBaseError(
		http.StatusForbidden,
		"PASSWORD_MISMATCH",
		"Password and confirmation do not match",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	// Account read/update/delete errors. GetAccount, UpdateAccount and
	// DeleteAccount signal a missing record as 422, matching the public
	// API contract for those endpoints.
	ErrUnknownUser = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNKNOWN_USER",
		"Unknown user",
		"",
	)

	ErrAccountUpdateFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"UPDATE_FAILED",
		"Failed to update account",
		"",
	)

	ErrAccountDeleteFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"DELETE_FAILED",
		"Failed to delete account",
		"",
	)

	// Credential lifecycle errors
	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"New password must be 6-32 characters and match its confirmation",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Old password is incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// PersistenceError represents a store-layer write failure. It implements
// AppError and keeps the wrapped error for logs while the outward message
// stays an opaque "operation failed".
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a store-layer error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "store operation failed").Error()
}

// Unwrap exposes the underlying store error to errors.Is/As
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "Operation failed"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}
