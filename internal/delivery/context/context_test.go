package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID_RoundTrip(t *testing.T) {
	c := newEchoContext()
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	assert.NotEmpty(t, GetRequestID(newEchoContext()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestCallerUID(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetCallerUID(c))

	SetCallerUID(c, "user-1")
	assert.Equal(t, "user-1", GetCallerUID(c))
}

func TestTraceIDFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: ""},
		{header: "abc123/456;o=1", want: "abc123"},
		{header: "abc123;o=1", want: "abc123"},
		{header: "abc123", want: "abc123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TraceIDFromHeader(tt.header), tt.header)
	}
}
