// Package rtdb implements the tank repository on the Firebase Realtime Database.
package rtdb

import (
	"context"

	"firebase.google.com/go/v4/db"
)

// store is the key-path access the repository needs from the Realtime Database
type store interface {
	Get(ctx context.Context, path string, v any) error
	GetShallow(ctx context.Context, path string, v any) error
	Set(ctx context.Context, path string, v any) error
}

type clientStore struct {
	client *db.Client
}

func (s *clientStore) Get(ctx context.Context, path string, v any) error {
	return s.client.NewRef(path).Get(ctx, v)
}

func (s *clientStore) GetShallow(ctx context.Context, path string, v any) error {
	return s.client.NewRef(path).GetShallow(ctx, v)
}

func (s *clientStore) Set(ctx context.Context, path string, v any) error {
	return s.client.NewRef(path).Set(ctx, v)
}
