package usecase

import (
	"context"
	"errors"
	"fmt"

	"clockify-exporter/internal/export"
	"clockify-exporter/internal/model"
	"clockify-exporter/pkg/clockify"
)

// Workspaces lists the workspaces visible to the presented credential.
// Listings are cached per credential with a short TTL since workspace
// membership changes rarely and the action is often retriggered.
func (uc *implUseCase) Workspaces(ctx context.Context, sc model.Scope) (export.WorkspacesOutput, error) {
	if sc.APIKey == "" {
		return export.WorkspacesOutput{}, export.ErrMissingAPIKey
	}

	if cached, ok := uc.wsCache.Get(sc.APIKey); ok {
		uc.l.Debugf(ctx, "Workspaces: cache hit (%d workspaces)", len(cached))
		return export.WorkspacesOutput{Workspaces: cached}, nil
	}

	raw, err := uc.source.Workspaces(ctx, sc.APIKey)
	if err != nil {
		if errors.Is(err, clockify.ErrUnauthorized) {
			return export.WorkspacesOutput{}, export.ErrUnauthorized
		}
		uc.l.Errorf(ctx, "Workspaces: %v", err)
		return export.WorkspacesOutput{}, fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(raw) == 0 {
		return export.WorkspacesOutput{}, export.ErrNoWorkspaces
	}

	workspaces := make([]export.Workspace, len(raw))
	for i, w := range raw {
		workspaces[i] = export.Workspace{ID: w.ID, Name: w.Name}
	}
	uc.wsCache.Add(sc.APIKey, workspaces)

	uc.l.Infof(ctx, "Workspaces: loaded %d workspaces", len(workspaces))
	return export.WorkspacesOutput{Workspaces: workspaces}, nil
}
