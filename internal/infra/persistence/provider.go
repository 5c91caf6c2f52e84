// Package persistence selects the credential store configured for the process.
package persistence

import (
	"log/slog"

	"tankwatch/config"
	"tankwatch/internal/domain/repository"
	"tankwatch/internal/errors"
	infrafirebase "tankwatch/internal/infra/firebase"
	firestorerepo "tankwatch/internal/infra/persistence/firestore"
	"tankwatch/internal/infra/persistence/memory"
	"tankwatch/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// CredentialStoreParams holds dependencies for the credential store
type CredentialStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// NewCredentialRepository builds the repository named by credentialStore.driver
func NewCredentialRepository(params CredentialStoreParams) (repository.CredentialRepository, error) {
	driver := params.Config.CredentialStore.Driver
	params.Logger.Info("Using credential store", slog.String("driver", driver))

	switch driver {
	case config.CredentialStoreFirestore:
		client, err := infrafirebase.NewFirestoreClient(params.Lc, params.App)
		if err != nil {
			return nil, err
		}

		return firestorerepo.NewCredentialRepository(client, params.Config), nil

	case config.CredentialStorePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewCredentialRepository(db), nil

	case config.CredentialStoreMemory:
		return memory.NewCredentialRepository(), nil

	default:
		return nil, errors.Errorf("unknown credential store driver: %s", driver)
	}
}
