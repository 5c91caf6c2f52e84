package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/repository"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TokenExchangeServiceParams holds dependencies for the token exchange gateway, injected by Fx.
type TokenExchangeServiceParams struct {
	fx.In

	Logger         *slog.Logger
	CredentialRepo repository.CredentialRepository
	Minter         service.IdentityTokenMinter
}

type tokenExchangeService struct {
	credentialRepo repository.CredentialRepository
	minter         service.IdentityTokenMinter
	logger         *slog.Logger
}

// NewTokenExchangeService creates the token exchange gateway
func NewTokenExchangeService(params TokenExchangeServiceParams) usecase.TokenExchangeUsecase {
	return &tokenExchangeService{
		credentialRepo: params.CredentialRepo,
		minter:         params.Minter,
		logger:         params.Logger,
	}
}

func (s *tokenExchangeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ExchangeToken looks the secret up, then mints an identity token for its owner. It never writes.
func (s *tokenExchangeService) ExchangeToken(ctx context.Context, apiKey string) (string, error) {
	if apiKey == "" {
		return "", usecase.ErrAPIKeyMissing
	}

	credential, err := s.credentialRepo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", usecase.ErrAPIKeyInvalid
		}

		return "", errors.Wrap(err, "failed to look up device credential")
	}

	if subtle.ConstantTimeCompare([]byte(credential.APIKey), []byte(apiKey)) != 1 {
		return "", usecase.ErrAPIKeyInvalid
	}

	if credential.UID == "" {
		s.log(ctx).Error("Device credential has no owner uid",
			slog.String("severity", "CRITICAL"),
			slog.String("hardware_id", credential.HardwareID),
		)

		return "", usecase.ErrCredentialOwnerMissing
	}

	token, err := s.minter.MintToken(ctx, credential.UID)
	if err != nil {
		return "", errors.Wrap(err, "failed to mint identity token")
	}

	return token, nil
}
