package postgres

import (
	"context"

	"tankwatch/internal/domain/entity"
	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/domain/repository"
	"tankwatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// SaveCredential upserts the credential row of the hardware id.
func (repo *credentialRepository) SaveCredential(ctx context.Context, credential *entity.DeviceCredential) error {
	credentialM := fromCredentialDomain(credential)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hardware_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"uid", "api_key", "created_at"}),
		}).
		Create(credentialM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			// Only the api_key index can collide here
			return domainerrors.NewDatabaseExecuteError(err, "device secret collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save device credential")
	}

	return nil
}

// FindByAPIKey retrieves the credential holding apiKey.
func (repo *credentialRepository) FindByAPIKey(ctx context.Context, apiKey string) (*entity.DeviceCredential, error) {
	var credentialM model.DeviceCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("api_key = ?", apiKey).
		Take(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device credential")
	}

	return toCredentialDomain(&credentialM), nil
}

func fromCredentialDomain(credential *entity.DeviceCredential) *model.DeviceCredentialModel {
	return &model.DeviceCredentialModel{
		HardwareID: credential.HardwareID,
		UID:        credential.UID,
		APIKey:     credential.APIKey,
		CreatedAt:  credential.CreatedAt,
	}
}

func toCredentialDomain(credentialM *model.DeviceCredentialModel) *entity.DeviceCredential {
	return &entity.DeviceCredential{
		HardwareID: credentialM.HardwareID,
		UID:        credentialM.UID,
		APIKey:     credentialM.APIKey,
		CreatedAt:  credentialM.CreatedAt,
	}
}
