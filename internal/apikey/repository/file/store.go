package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"clockify-exporter/pkg/log"
)

// Store keeps the credential in a single plaintext file, matching the
// original single-user deployment. A mutex serializes writers since gin
// handlers run concurrently.
type Store struct {
	l    log.Logger
	path string
	mu   sync.Mutex
}

// New creates a file-backed credential store at path.
func New(l log.Logger, path string) *Store {
	return &Store{l: l, path: path}
}

// Get reads the saved key. A missing file means no key was saved yet.
func (s *Store) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save writes the key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(strings.TrimSpace(key)), 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	s.l.Debugf(ctx, "apikey: saved credential to %s", s.path)
	return nil
}

// Delete removes the key file. Idempotent.
func (s *Store) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete key file: %w", err)
	}
	return nil
}
