package middleware

import (
	"log/slog"
	"strings"

	"tankwatch/internal/delivery/api/response"
	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// BearerToken returns the credential of an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, bearerPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// AuthMiddleware resolves the caller of a callable from its ID token
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware creates the callable authentication middleware
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// IdentifyCaller records the verified uid of the caller. Requests without an Authorization
// header pass through anonymously so the callable decides how to reject them; a token that
// fails verification is rejected here.
func (m *AuthMiddleware) IdentifyCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		idToken, ok := BearerToken(header)
		if !ok {
			return response.Unauthenticated(c, "Unauthenticated")
		}

		ctx := c.Request().Context()
		uid, err := m.verifier.VerifyIDToken(ctx, idToken)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rejected callable ID token", slog.Any("error", err))

			return response.Unauthenticated(c, "Unauthenticated")
		}

		deliverycontext.SetCallerUID(c, uid)

		return next(c)
	}
}
