package auth

import (
	"log/slog"

	"tankwatch/config"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/errors"
	infrafirebase "tankwatch/internal/infra/firebase"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// IdentityParams holds dependencies for the identity providers
type IdentityParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// IdentityResult exposes one implementation as both minter and verifier
type IdentityResult struct {
	fx.Out

	Minter   service.IdentityTokenMinter
	Verifier service.IdentityVerifier
}

// NewIdentity selects the identity provider from identityToken.provider
func NewIdentity(params IdentityParams) (IdentityResult, error) {
	switch params.Config.IdentityToken.Provider {
	case config.IdentityProviderJWT:
		svc, err := NewJWTService(params.Config)
		if err != nil {
			return IdentityResult{}, err
		}
		params.Logger.Info("Using JWT identity tokens", slog.String("issuer", params.Config.IdentityToken.Issuer))

		return IdentityResult{Minter: svc, Verifier: svc}, nil

	case config.IdentityProviderFirebase:
		client, err := infrafirebase.NewAuthClient(params.App)
		if err != nil {
			return IdentityResult{}, err
		}
		svc := NewFirebaseIdentity(client)

		return IdentityResult{Minter: svc, Verifier: svc}, nil

	default:
		return IdentityResult{}, errors.Errorf("unknown identity provider: %s", params.Config.IdentityToken.Provider)
	}
}
