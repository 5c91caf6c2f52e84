// Package firestore stores device credentials in a Firestore collection keyed by hardware id.
package firestore

import (
	"context"
	"time"

	"tankwatch/config"
	"tankwatch/internal/domain/entity"
	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// credentialDocument is the stored shape of devices/{hardwareId}
type credentialDocument struct {
	UID       string    `firestore:"uid"`
	APIKey    string    `firestore:"apiKey"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

type credentialRepository struct {
	client     *firestore.Client
	collection string
}

// NewCredentialRepository creates the Firestore-backed credential repository
func NewCredentialRepository(client *firestore.Client, cfg *config.Config) repository.CredentialRepository {
	return &credentialRepository{
		client:     client,
		collection: cfg.CredentialStore.Collection,
	}
}

// SaveCredential overwrites devices/{hardwareId}; createdAt is stamped by the server.
func (r *credentialRepository) SaveCredential(ctx context.Context, credential *entity.DeviceCredential) error {
	doc := toDocument(credential)

	if _, err := r.client.Collection(r.collection).Doc(credential.HardwareID).Set(ctx, doc); err != nil {
		return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, "save device credential"))
	}

	return nil
}

// FindByAPIKey queries the collection for the single document holding apiKey.
func (r *credentialRepository) FindByAPIKey(ctx context.Context, apiKey string) (*entity.DeviceCredential, error) {
	snapshots, err := r.client.Collection(r.collection).
		Where("apiKey", "==", apiKey).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.WithStack(domainerrors.NewDatabaseExecuteError(err, "query device credential"))
	}

	if len(snapshots) == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	var doc credentialDocument
	if err := snapshots[0].DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode device credential %s", snapshots[0].Ref.ID)
	}

	return fromDocument(snapshots[0].Ref.ID, &doc), nil
}

// toDocument leaves CreatedAt zero so the server timestamp applies.
func toDocument(credential *entity.DeviceCredential) *credentialDocument {
	return &credentialDocument{
		UID:    credential.UID,
		APIKey: credential.APIKey,
	}
}

func fromDocument(hardwareID string, doc *credentialDocument) *entity.DeviceCredential {
	return &entity.DeviceCredential{
		HardwareID: hardwareID,
		UID:        doc.UID,
		APIKey:     doc.APIKey,
		CreatedAt:  doc.CreatedAt,
	}
}
