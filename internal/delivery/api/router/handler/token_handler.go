package handler

import (
	"log/slog"
	"net/http"

	"tankwatch/internal/delivery/api/middleware"
	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Plain-text bodies of the getNewToken endpoint. Devices match on them.
const (
	msgNoAPIKey       = "Unauthorized: No API key provided."
	msgInvalidAPIKey  = "Forbidden: Invalid API key."
	msgMissingUID     = "Internal Server Error: UID is missing in database."
	msgInternalServer = "Internal Server Error."
)

// TokenResponse is the getNewToken success body
type TokenResponse struct {
	Token string `json:"token"`
}

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenExchangeUC usecase.TokenExchangeUsecase
	Logger          *slog.Logger
}

// TokenHandler exchanges device secrets for identity tokens
type TokenHandler struct {
	tokenExchangeUC usecase.TokenExchangeUsecase
	logger          *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenExchangeUC: params.TokenExchangeUC,
		logger:          params.Logger,
	}
}

// GetNewToken answers "Authorization: Bearer <apiKey>" with a fresh identity token
func (h *TokenHandler) GetNewToken(c echo.Context) error {
	apiKey, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return c.String(http.StatusUnauthorized, msgNoAPIKey)
	}

	ctx := c.Request().Context()
	token, err := h.tokenExchangeUC.ExchangeToken(ctx, apiKey)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, TokenResponse{Token: token})
	case errors.Is(err, usecase.ErrAPIKeyMissing):
		return c.String(http.StatusUnauthorized, msgNoAPIKey)
	case errors.Is(err, usecase.ErrAPIKeyInvalid):
		return c.String(http.StatusForbidden, msgInvalidAPIKey)
	case errors.Is(err, usecase.ErrCredentialOwnerMissing):
		return c.String(http.StatusInternalServerError, msgMissingUID)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("CRITICAL ERROR in getNewToken",
			slog.String("severity", "CRITICAL"),
			slog.Any("error", err),
		)

		return c.String(http.StatusInternalServerError, msgInternalServer)
	}
}
