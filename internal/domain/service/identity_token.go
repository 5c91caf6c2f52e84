package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidIDToken is returned when a caller identity token fails verification.
var ErrInvalidIDToken = errors.New("invalid identity token")

// IdentityTokenMinter mints short-lived identity tokens for a user.
type IdentityTokenMinter interface {
	MintToken(ctx context.Context, uid string) (string, error)
}

// IdentityVerifier verifies a caller identity token and returns its user id.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
