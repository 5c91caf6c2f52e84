// Package auth provides concrete implementations for identity-related domain services.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tankwatch/config"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/errors"
)

const tokenTypeIdentity = "identity"

// jwtService mints and verifies HS256 identity tokens for self-hosted deployments.
type jwtService struct {
	secret []byte        // Secret key for signing identity tokens.
	issuer string        // Value of the iss claim.
	ttl    time.Duration // Time-to-live for minted tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (*jwtService, error) {
	if cfg.IdentityToken == nil || cfg.IdentityToken.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.IdentityToken.Secret),
		issuer: cfg.IdentityToken.Issuer,
		ttl:    cfg.IdentityToken.TTL,
		now:    time.Now,
	}, nil
}

// MintToken creates a signed identity token whose subject is uid.
func (s *jwtService) MintToken(_ context.Context, uid string) (string, error) {
	if uid == "" {
		return "", errors.New("uid is required")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":  uid,                   // Subject (who the token is for)
		"iat":  now.Unix(),            // Issued At
		"exp":  now.Add(s.ttl).Unix(), // Expiration Time
		"type": tokenTypeIdentity,
	}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign identity token")
	}

	return signed, nil
}

// VerifyIDToken validates signature, expiry and issuer, and returns the subject.
func (s *jwtService) VerifyIDToken(_ context.Context, idToken string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(idToken, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return "", errors.Join(service.ErrInvalidIDToken, err)
	}

	if tokenType, _ := claims["type"].(string); tokenType != tokenTypeIdentity {
		return "", errors.Wrap(service.ErrInvalidIDToken, "unexpected token type")
	}

	uid, err := claims.GetSubject()
	if err != nil || uid == "" {
		return "", errors.Wrap(service.ErrInvalidIDToken, "token has no subject")
	}

	return uid, nil
}
