package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tankwatch/internal/delivery/api/validator"
	deliverycontext "tankwatch/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const testUID = "user-1"

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newCallableContext builds a JSON POST for a callable; an empty uid leaves the caller anonymous.
func newCallableContext(e *echo.Echo, uid, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		deliverycontext.SetCallerUID(c, uid)
	}

	return c, rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	if err := HealthCheck(e.NewContext(req, rec)); err != nil {
		t.Fatalf("HealthCheck() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
