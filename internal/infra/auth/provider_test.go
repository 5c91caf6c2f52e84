package auth

import (
	"log/slog"
	"testing"
	"time"

	"tankwatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity_JWTProvider(t *testing.T) {
	cfg := &config.Config{IdentityToken: &config.IdentityTokenConfig{
		Provider: config.IdentityProviderJWT,
		Secret:   "secret",
		TTL:      time.Hour,
	}}

	result, err := NewIdentity(IdentityParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)
	assert.Same(t, result.Minter, result.Verifier)
}

func TestNewIdentity_UnknownProvider(t *testing.T) {
	cfg := &config.Config{IdentityToken: &config.IdentityTokenConfig{Provider: "saml"}}

	_, err := NewIdentity(IdentityParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	assert.ErrorContains(t, err, "unknown identity provider")
}
