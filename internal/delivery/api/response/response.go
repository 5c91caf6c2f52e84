// Package response writes the wire formats of the API server.
//
// Callables use the Firebase callable protocol: {"result": ...} on success and
// {"error": {"status": ..., "message": ...}} on failure.
package response

import (
	"net/http"

	domainerrors "tankwatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CallableResult wraps a successful callable response
type CallableResult struct {
	Result any `json:"result"`
}

// CallableError wraps a failed callable response
type CallableError struct {
	Error *ErrorInfo `json:"error"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Status  string `json:"status"`  // Callable status, e.g. "INVALID_ARGUMENT"
	Message string `json:"message"` // Client-facing message
}

// Result returns a successful callable response
func Result(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, CallableResult{Result: data})
}

// Error returns a callable error response
func Error(c echo.Context, httpCode int, status, message string) error {
	return c.JSON(httpCode, CallableError{
		Error: &ErrorInfo{
			Status:  status,
			Message: message,
		},
	})
}

// InvalidArgument returns a 400 callable error
func InvalidArgument(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.CodeInvalidArgument, message)
}

// Unauthenticated returns a 401 callable error
func Unauthenticated(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.CodeUnauthenticated, message)
}

// Internal returns a 500 callable error without internal details
func Internal(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.CodeInternal, "INTERNAL")
}

// HandleAppError converts domain errors to callable errors and passes anything else on
// to the HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
