package auth

import (
	"context"

	"tankwatch/internal/domain/service"
	"tankwatch/internal/errors"

	"firebase.google.com/go/v4/auth"
)

// firebaseAuthClient is the part of *auth.Client used for identity tokens
type firebaseAuthClient interface {
	CustomToken(ctx context.Context, uid string) (string, error)
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// firebaseIdentity mints Firebase custom tokens for devices and verifies Firebase ID tokens of callers.
type firebaseIdentity struct {
	client firebaseAuthClient
}

// NewFirebaseIdentity wraps a Firebase Auth client
func NewFirebaseIdentity(client *auth.Client) *firebaseIdentity {
	return &firebaseIdentity{client: client}
}

// MintToken returns a custom token the device exchanges for an ID token.
func (f *firebaseIdentity) MintToken(ctx context.Context, uid string) (string, error) {
	token, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", errors.Wrap(err, "failed to create custom token")
	}

	return token, nil
}

// VerifyIDToken checks a Firebase ID token and returns its uid.
func (f *firebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Join(service.ErrInvalidIDToken, err)
	}

	if token.UID == "" {
		return "", errors.Wrap(service.ErrInvalidIDToken, "token has no uid")
	}

	return token.UID, nil
}
