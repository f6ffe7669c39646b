package export

import (
	"context"

	"clockify-exporter/internal/model"
	"clockify-exporter/pkg/clockify"
)

// UseCase is the export pipeline: workspace discovery, the fetch action
// and the spreadsheet export of the last fetched ResultSet.
type UseCase interface {
	Workspaces(ctx context.Context, sc model.Scope) (WorkspacesOutput, error)
	FetchEntries(ctx context.Context, sc model.Scope, input FetchInput) (FetchOutput, error)
	ExportFile(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}

// Source is the remote time-tracking service consumed by the pipeline.
// *clockify.Client satisfies it.
type Source interface {
	CurrentUser(ctx context.Context, apiKey string) (*clockify.User, error)
	Workspaces(ctx context.Context, apiKey string) ([]clockify.Workspace, error)
	TimeEntries(ctx context.Context, apiKey string, req clockify.TimeEntriesRequest) ([]clockify.TimeEntry, error)
}
