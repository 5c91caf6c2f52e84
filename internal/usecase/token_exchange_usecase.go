package usecase

import (
	"context"

	"github.com/pkg/errors"
)

// Token exchange outcomes that map to distinct HTTP statuses.
var (
	// ErrAPIKeyMissing: no usable bearer secret was presented.
	ErrAPIKeyMissing = errors.New("api key missing")
	// ErrAPIKeyInvalid: no credential holds the presented secret.
	ErrAPIKeyInvalid = errors.New("api key invalid")
	// ErrCredentialOwnerMissing: a matched credential has no owner uid.
	ErrCredentialOwnerMissing = errors.New("credential owner missing")
)

// TokenExchangeUsecase trades a device secret for a short-lived identity token
type TokenExchangeUsecase interface {
	ExchangeToken(ctx context.Context, apiKey string) (string, error)
}
