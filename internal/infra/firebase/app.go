// Package firebase initialises the Firebase app and the clients the service uses.
package firebase

import (
	"context"
	"log/slog"

	"tankwatch/config"
	"tankwatch/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app
type AppParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewApp initialises the Firebase app. Without a credentials path the app falls back to
// application default credentials.
func NewApp(params AppParams) (*firebase.App, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase section is required")
	}

	fbCfg := &firebase.Config{
		ProjectID:   params.Config.Firebase.ProjectID,
		DatabaseURL: params.Config.Firebase.DatabaseURL,
	}

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(context.Background(), fbCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", fbCfg.ProjectID),
		slog.String("database_url", fbCfg.DatabaseURL),
	)

	return app, nil
}

// NewDatabaseClient returns the Realtime Database client holding the tank tree
func NewDatabaseClient(app *firebase.App) (*db.Client, error) {
	client, err := app.Database(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get realtime database client")
	}

	return client, nil
}

// NewAuthClient returns the Firebase Auth client
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// NewMessagingClient returns the FCM client
func NewMessagingClient(app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// NewFirestoreClient returns the Firestore client and closes it on shutdown
func NewFirestoreClient(lc fx.Lifecycle, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
