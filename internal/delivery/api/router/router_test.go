package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tankwatch/config"
	"tankwatch/internal/delivery/api/middleware"
	"tankwatch/internal/delivery/api/router/handler"
	"tankwatch/internal/delivery/api/validator"
	mockSvc "tankwatch/internal/mocks/service"
	mockUC "tankwatch/internal/mocks/usecase"
	"tankwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo          *echo.Echo
	mockVerifier  *mockSvc.MockIdentityVerifier
	mockPushToken *mockUC.MockPushTokenUsecase
	mockExchange  *mockUC.MockTokenExchangeUsecase
}

func createTestRouter(t *testing.T) *routerFixtures {
	logger := slog.New(slog.DiscardHandler)
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockCredential := mockUC.NewMockDeviceCredentialUsecase(t)
	mockPushToken := mockUC.NewMockPushTokenUsecase(t)
	mockExchange := mockUC.NewMockTokenExchangeUsecase(t)

	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RPS: 1, Burst: 10}}

	e := echo.New()
	e.Validator = validator.New()

	NewRouter(RouterParams{
		CallableHandler: handler.NewCallableHandler(handler.CallableHandlerParams{
			CredentialUC: mockCredential,
			PushTokenUC:  mockPushToken,
			Logger:       logger,
		}),
		TokenHandler: handler.NewTokenHandler(handler.TokenHandlerParams{
			TokenExchangeUC: mockExchange,
			Logger:          logger,
		}),
		AuthMiddleware:      middleware.NewAuthMiddleware(mockVerifier, logger),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(cfg),
	}).RegisterRoutes(e)

	return &routerFixtures{
		echo:          e,
		mockVerifier:  mockVerifier,
		mockPushToken: mockPushToken,
		mockExchange:  mockExchange,
	}
}

func TestRouter_SaveFCMTokenUsesVerifiedCaller(t *testing.T) {
	fx := createTestRouter(t)

	fx.mockVerifier.EXPECT().VerifyIDToken(mock.Anything, "id-token").Return("user-1", nil)
	fx.mockPushToken.EXPECT().
		SavePushToken(mock.Anything, "user-1", "fcm-1").
		Return(&usecase.SavePushTokenResult{Success: true, Message: "Token saved successfully."}, nil)

	req := httptest.NewRequest(http.MethodPost, "/saveFCMToken", strings.NewReader(`{"data":{"token":"fcm-1"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer id-token")
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"success":true,"message":"Token saved successfully."}}`, rec.Body.String())
}

func TestRouter_GetNewTokenAcceptsGetAndPost(t *testing.T) {
	fx := createTestRouter(t)

	fx.mockExchange.EXPECT().ExchangeToken(mock.Anything, "secret").Return("custom-token", nil).Times(2)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, "/getNewToken", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer secret")
		rec := httptest.NewRecorder()

		fx.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, method)
		assert.JSONEq(t, `{"token":"custom-token"}`, rec.Body.String(), method)
	}
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
