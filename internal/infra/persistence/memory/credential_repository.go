// Package memory keeps device credentials in process memory for local runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"tankwatch/internal/domain/entity"
	"tankwatch/internal/domain/repository"
)

type credentialRepository struct {
	mu           sync.RWMutex
	byHardwareID map[string]entity.DeviceCredential
	byAPIKey     map[string]string // apiKey -> hardwareID
	now          func() time.Time
}

// NewCredentialRepository creates an empty in-memory credential repository
func NewCredentialRepository() repository.CredentialRepository {
	return &credentialRepository{
		byHardwareID: make(map[string]entity.DeviceCredential),
		byAPIKey:     make(map[string]string),
		now:          time.Now,
	}
}

// SaveCredential replaces the hardware id's credential and retires its previous secret.
func (r *credentialRepository) SaveCredential(_ context.Context, credential *entity.DeviceCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.byHardwareID[credential.HardwareID]; ok {
		delete(r.byAPIKey, previous.APIKey)
	}

	stored := *credential
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}

	r.byHardwareID[stored.HardwareID] = stored
	r.byAPIKey[stored.APIKey] = stored.HardwareID

	return nil
}

func (r *credentialRepository) FindByAPIKey(_ context.Context, apiKey string) (*entity.DeviceCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hardwareID, ok := r.byAPIKey[apiKey]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	credential := r.byHardwareID[hardwareID]

	return &credential, nil
}
