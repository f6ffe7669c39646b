package repository

import "context"

// Store persists the single credential value.
type Store interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, key string) error
	Delete(ctx context.Context) error
}
