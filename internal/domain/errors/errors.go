package errors

import (
	"net/http"

	"tankwatch/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Callable status, e.g. "INVALID_ARGUMENT"
	Message() string   // Client-facing message
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

// WithMessage returns a copy carrying a different client-facing message.
// The copy still matches the original under errors.Is.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches errors sharing the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Callable status codes.
const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

// Predefined error types
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"The function must be called while authenticated.",
		"",
	)

	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"The function must be called with a valid argument.",
		"",
	)

	ErrRegisterDeviceUnauthenticated = ErrUnauthenticated.WithMessage(
		"You must be logged in to register a device.",
	)

	ErrSavePushTokenUnauthenticated = ErrUnauthenticated.WithMessage(
		"You must be logged in to save a token.",
	)

	ErrHardwareIDRequired = ErrInvalidArgument.WithMessage(
		"The function must be called with a 'hardwareId' argument.",
	)

	ErrPushTokenRequired = ErrInvalidArgument.WithMessage(
		"The function must be called with a 'token' argument.",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		CodePermissionDenied,
		"Permission denied.",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"Internal error.",
		"",
	)
)

// DatabaseExecuteError represents a storage execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a storage-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying storage error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeInternal
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal error."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
