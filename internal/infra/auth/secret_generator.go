package auth

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"tankwatch/internal/errors"
)

const secretBytes = 32

// randomSecretGenerator draws device secrets from crypto/rand.
type randomSecretGenerator struct {
	reader io.Reader
}

// NewSecretGenerator creates the device secret generator
func NewSecretGenerator() *randomSecretGenerator {
	return &randomSecretGenerator{reader: rand.Reader}
}

// Generate returns 32 random bytes as 64 lowercase hex characters.
func (g *randomSecretGenerator) Generate() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := io.ReadFull(g.reader, buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
