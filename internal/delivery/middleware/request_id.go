package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "tankwatch/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request an id and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process picks the request id from X-Request-Id, then the Cloud trace id, then a new
// uuid, and echoes it back in the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFor(c.Request().Header)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func requestIDFor(header http.Header) string {
	if id := header.Get(deliverycontext.HeaderXRequestID); id != "" {
		return id
	}
	if id := deliverycontext.TraceIDFromHeader(header.Get(deliverycontext.HeaderCloudTraceContext)); id != "" {
		return id
	}

	return uuid.New().String()
}
