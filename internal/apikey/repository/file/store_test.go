package file

import (
	"context"
	"path/filepath"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any) {}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := New(nopLogger{}, filepath.Join(t.TempDir(), "api_key.txt"))

	t.Run("Get Before Save", func(t *testing.T) {
		key, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "" {
			t.Errorf("expected empty key, got %q", key)
		}
	})

	t.Run("Save And Get Round Trip", func(t *testing.T) {
		if err := store.Save(ctx, "  my-secret-key \n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		key, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "my-secret-key" {
			t.Errorf("expected trimmed key, got %q", key)
		}
	})

	t.Run("Save Replaces", func(t *testing.T) {
		if err := store.Save(ctx, "another-key"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		key, _ := store.Get(ctx)
		if key != "another-key" {
			t.Errorf("expected replacement, got %q", key)
		}
	})

	t.Run("Delete Is Idempotent", func(t *testing.T) {
		if err := store.Delete(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Delete(ctx); err != nil {
			t.Fatalf("second delete should be a no-op: %v", err)
		}
		key, _ := store.Get(ctx)
		if key != "" {
			t.Errorf("expected empty key after delete, got %q", key)
		}
	})
}
