package usecase

import (
	"context"
	"errors"
	"testing"

	"clockify-exporter/internal/apikey"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

type memStore struct {
	key string
	err error
}

func (m *memStore) Get(ctx context.Context) (string, error)    { return m.key, m.err }
func (m *memStore) Save(ctx context.Context, key string) error { m.key = key; return m.err }
func (m *memStore) Delete(ctx context.Context) error           { m.key = ""; return m.err }

func TestUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Save Empty Key Rejected", func(t *testing.T) {
		store := &memStore{}
		uc := New(mockLogger{}, store)

		for _, key := range []string{"", "   ", "\n\t"} {
			if err := uc.Save(ctx, key); !errors.Is(err, apikey.ErrEmptyKey) {
				t.Errorf("Save(%q): expected ErrEmptyKey, got %v", key, err)
			}
		}
		if store.key != "" {
			t.Errorf("empty key must not reach the store")
		}
	})

	t.Run("Save Get Delete", func(t *testing.T) {
		store := &memStore{}
		uc := New(mockLogger{}, store)

		if err := uc.Save(ctx, "clockify-key"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		key, err := uc.Get(ctx)
		if err != nil || key != "clockify-key" {
			t.Errorf("expected clockify-key, got %q (%v)", key, err)
		}

		if err := uc.Delete(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		key, _ = uc.Get(ctx)
		if key != "" {
			t.Errorf("expected empty key after delete, got %q", key)
		}
	})

	t.Run("Store Failure Wrapped", func(t *testing.T) {
		store := &memStore{err: errors.New("disk on fire")}
		uc := New(mockLogger{}, store)

		if _, err := uc.Get(ctx); err == nil {
			t.Errorf("expected error from store")
		}
		if err := uc.Save(ctx, "key"); err == nil {
			t.Errorf("expected error from store")
		}
		if err := uc.Delete(ctx); err == nil {
			t.Errorf("expected error from store")
		}
	})
}
