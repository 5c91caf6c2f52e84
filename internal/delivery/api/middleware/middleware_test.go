package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tankwatch/config"
	"tankwatch/internal/delivery/api/response"
	deliverycontext "tankwatch/internal/delivery/context"
	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/domain/service"
	mockSvc "tankwatch/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		wantOK bool
	}{
		{header: "Bearer abc", want: "abc", wantOK: true},
		{header: "Bearer  abc ", want: "abc", wantOK: true},
		{header: "Bearer ", wantOK: false},
		{header: "bearer abc", wantOK: false},
		{header: "abc", wantOK: false},
		{header: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func runIdentifyCaller(t *testing.T, verifier service.IdentityVerifier, authorization string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/registerDevice", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		called bool
		uid    string
	)
	next := func(c echo.Context) error {
		called = true
		uid = deliverycontext.GetCallerUID(c)

		return c.NoContent(http.StatusNoContent)
	}

	require.NoError(t, NewAuthMiddleware(verifier, discardLogger()).IdentifyCaller(next)(c))

	return rec, uid, called
}

func TestAuthMiddleware_IdentifyCaller_VerifiedToken(t *testing.T) {
	verifier := mockSvc.NewMockIdentityVerifier(t)
	verifier.EXPECT().VerifyIDToken(mock.Anything, "id-token").Return("user-1", nil)

	rec, uid, called := runIdentifyCaller(t, verifier, "Bearer id-token")

	assert.True(t, called)
	assert.Equal(t, "user-1", uid)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_IdentifyCaller_AnonymousPassesThrough(t *testing.T) {
	verifier := mockSvc.NewMockIdentityVerifier(t)

	_, uid, called := runIdentifyCaller(t, verifier, "")

	assert.True(t, called)
	assert.Empty(t, uid)
}

func TestAuthMiddleware_IdentifyCaller_RejectsBadToken(t *testing.T) {
	verifier := mockSvc.NewMockIdentityVerifier(t)
	verifier.EXPECT().VerifyIDToken(mock.Anything, "forged").Return("", service.ErrInvalidIDToken)

	rec, _, called := runIdentifyCaller(t, verifier, "Bearer forged")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_IdentifyCaller_RejectsMalformedHeader(t *testing.T) {
	verifier := mockSvc.NewMockIdentityVerifier(t)

	rec, _, called := runIdentifyCaller(t, verifier, "Token abc")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "client app error",
			err:         errors.WithStack(domainerrors.ErrHardwareIDRequired),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_ARGUMENT",
			wantMessage: "The function must be called with a 'hardwareId' argument.",
		},
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error hides details",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL",
			wantMessage: "INTERNAL",
		},
		{
			name:        "server app error hides details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "save"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL",
			wantMessage: "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/saveFCMToken", nil)
			rec := httptest.NewRecorder()

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var payload response.CallableError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			require.NotNil(t, payload.Error)
			assert.Equal(t, tt.wantCode, payload.Error.Status)
			assert.Equal(t, tt.wantMessage, payload.Error.Message)
		})
	}
}

func TestRateLimitMiddleware_LimitsPerClient(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RPS: 1, Burst: 2}}
	limiter := NewRateLimitMiddleware(cfg)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"), "burst exhausted")
	assert.True(t, limiter.allow("10.0.0.2"), "other clients keep their own budget")

	now = now.Add(time.Second)
	assert.True(t, limiter.allow("10.0.0.1"), "one token refilled")
}

func TestRateLimitMiddleware_EvictsIdleClients(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RPS: 1, Burst: 1}}
	limiter := NewRateLimitMiddleware(cfg)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.allow("10.0.0.1")
	now = now.Add(2 * rateLimiterIdleTTL)
	limiter.allow("10.0.0.2")

	assert.NotContains(t, limiter.clients, "10.0.0.1")
	assert.Contains(t, limiter.clients, "10.0.0.2")
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RPS: 1, Burst: 1}}
	limiter := NewRateLimitMiddleware(cfg)
	e := echo.New()
	handler := limiter.Limit(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := make([]int, 0, 2)
	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/getNewToken", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
