package usecase

import (
	"context"
	"fmt"
	"strings"

	"clockify-exporter/internal/apikey"
)

// Get returns the persisted credential, or "" when none is saved.
func (uc *implUseCase) Get(ctx context.Context) (string, error) {
	key, err := uc.store.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Get: %v", err)
		return "", fmt.Errorf("failed to load API key: %w", err)
	}
	return key, nil
}

// Save persists a non-empty credential.
func (uc *implUseCase) Save(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return apikey.ErrEmptyKey
	}

	if err := uc.store.Save(ctx, key); err != nil {
		uc.l.Errorf(ctx, "Save: %v", err)
		return fmt.Errorf("failed to save API key: %w", err)
	}
	return nil
}

// Delete clears the persisted credential.
func (uc *implUseCase) Delete(ctx context.Context) error {
	if err := uc.store.Delete(ctx); err != nil {
		uc.l.Errorf(ctx, "Delete: %v", err)
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	return nil
}
