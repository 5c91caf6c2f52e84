package auth

import (
	"context"
	"testing"
	"time"

	"tankwatch/config"
	"tankwatch/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{IdentityToken: &config.IdentityTokenConfig{
		Provider: config.IdentityProviderJWT,
		Secret:   "test_identity_secret_key_very_long_for_testing",
		Issuer:   "tankwatch",
		TTL:      time.Hour,
	}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_MintAndVerify(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.MintToken(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	uid, err := svc.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{IdentityToken: &config.IdentityTokenConfig{}})
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.MintToken(context.Background(), "user-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.VerifyIDToken(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrInvalidIDToken)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := newTestJWTService(t)
	now := time.Now()

	sign := func(claims jwt.MapClaims, secret string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return token
	}

	valid := jwt.MapClaims{"sub": "user-1", "iss": "tankwatch", "exp": now.Add(time.Hour).Unix(), "type": tokenTypeIdentity}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: sign(valid, "another-secret")},
		{name: "wrong issuer", token: sign(jwt.MapClaims{"sub": "user-1", "iss": "other", "exp": now.Add(time.Hour).Unix(), "type": tokenTypeIdentity}, string(svc.secret))},
		{name: "no expiry", token: sign(jwt.MapClaims{"sub": "user-1", "iss": "tankwatch", "type": tokenTypeIdentity}, string(svc.secret))},
		{name: "wrong type", token: sign(jwt.MapClaims{"sub": "user-1", "iss": "tankwatch", "exp": now.Add(time.Hour).Unix(), "type": "refresh"}, string(svc.secret))},
		{name: "no subject", token: sign(jwt.MapClaims{"iss": "tankwatch", "exp": now.Add(time.Hour).Unix(), "type": tokenTypeIdentity}, string(svc.secret))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, err := svc.VerifyIDToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidIDToken)
			assert.Empty(t, uid)
		})
	}
}

func TestJWTService_MintRequiresUID(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.MintToken(context.Background(), "")
	assert.Error(t, err)
}
