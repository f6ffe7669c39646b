package usecase

import (
	"clockify-exporter/internal/apikey/repository"
	pkgLog "clockify-exporter/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store repository.Store
}

// New creates a new apikey UseCase instance.
func New(l pkgLog.Logger, store repository.Store) *implUseCase {
	return &implUseCase{
		l:     l,
		store: store,
	}
}
