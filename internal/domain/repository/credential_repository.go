package repository

import (
	"context"

	"tankwatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when no credential holds the given secret.
var ErrCredentialNotFound = errors.New("device credential not found")

// CredentialRepository defines storage of device credentials keyed by hardware id.
type CredentialRepository interface {
	// SaveCredential stores the credential under its hardware id, replacing any previous one.
	SaveCredential(ctx context.Context, credential *entity.DeviceCredential) error

	// FindByAPIKey returns the credential holding apiKey or ErrCredentialNotFound.
	FindByAPIKey(ctx context.Context, apiKey string) (*entity.DeviceCredential, error)
}
