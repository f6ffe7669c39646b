package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"clockify-exporter/internal/export"
	pkgLog "clockify-exporter/pkg/log"
)

// workspaceCacheSize bounds the number of credentials whose workspace
// listings are cached at once.
const workspaceCacheSize = 32

// Config tunes the export use case.
type Config struct {
	PageSize          int
	Timezone          string
	SheetName         string
	WorkspaceCacheTTL time.Duration

	// Now supplies the current instant for open-interval resolution.
	// Nil means time.Now; tests inject a fixed clock.
	Now func() time.Time
}

type implUseCase struct {
	l         pkgLog.Logger
	source    export.Source
	pageSize  int
	loc       *time.Location
	sheetName string
	now       func() time.Time

	wsCache *expirable.LRU[string, []export.Workspace]

	// inflight tracks running fetches per credential+workspace so a
	// second fetch for the same pair fails instead of duplicating calls.
	inflightMu sync.Mutex
	inflight   map[string]struct{}

	// result is the last successful fetch, replaced whole each time.
	resultMu sync.RWMutex
	result   *export.ResultSet
}

// New creates a new export UseCase instance.
func New(l pkgLog.Logger, source export.Source, cfg Config) (*implUseCase, error) {
	loc := time.Local
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 5000
	}
	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Time Entries"
	}
	ttl := cfg.WorkspaceCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &implUseCase{
		l:         l,
		source:    source,
		pageSize:  pageSize,
		loc:       loc,
		sheetName: sheetName,
		now:       now,
		wsCache:   expirable.NewLRU[string, []export.Workspace](workspaceCacheSize, nil, ttl),
		inflight:  make(map[string]struct{}),
	}, nil
}

func (uc *implUseCase) beginFetch(key string) bool {
	uc.inflightMu.Lock()
	defer uc.inflightMu.Unlock()
	if _, running := uc.inflight[key]; running {
		return false
	}
	uc.inflight[key] = struct{}{}
	return true
}

func (uc *implUseCase) endFetch(key string) {
	uc.inflightMu.Lock()
	defer uc.inflightMu.Unlock()
	delete(uc.inflight, key)
}

func (uc *implUseCase) setResult(rs export.ResultSet) {
	uc.resultMu.Lock()
	defer uc.resultMu.Unlock()
	uc.result = &rs
}

func (uc *implUseCase) currentResult() *export.ResultSet {
	uc.resultMu.RLock()
	defer uc.resultMu.RUnlock()
	return uc.result
}
