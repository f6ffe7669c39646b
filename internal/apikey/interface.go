package apikey

import "context"

// UseCase manages the single persisted Clockify credential.
type UseCase interface {
	// Get returns the saved key, or "" when none has been saved.
	Get(ctx context.Context) (string, error)
	// Save persists a non-empty key, replacing any previous one.
	Save(ctx context.Context, key string) error
	// Delete clears the saved key. Deleting a missing key is not an error.
	Delete(ctx context.Context) error
}
