package middleware

import (
	"log/slog"
	"net/http"

	"tankwatch/internal/delivery/api/response"
	deliverycontext "tankwatch/internal/delivery/context"
	domainerrors "tankwatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Client faults carry their own message; 5xx details are never exposed
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, statusForHTTPCode(httpErr.Code), message)

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Internal(c)
}

// statusForHTTPCode maps transport-level failures onto callable statuses.
func statusForHTTPCode(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return domainerrors.CodeUnauthenticated
	case http.StatusForbidden:
		return domainerrors.CodePermissionDenied
	case http.StatusNotFound:
		return domainerrors.CodeNotFound
	case http.StatusTooManyRequests:
		return "RESOURCE_EXHAUSTED"
	default:
		return domainerrors.CodeInvalidArgument
	}
}
