package export

import "errors"

// Domain-specific errors for the export package.
var (
	ErrMissingAPIKey    = errors.New("API key is required")
	ErrMissingWorkspace = errors.New("workspace must be selected")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrFetchInProgress  = errors.New("a fetch for this workspace is already in progress")
	ErrUnauthorized     = errors.New("invalid Clockify API key")
	ErrNoWorkspaces     = errors.New("no workspaces found")
	ErrNothingToExport  = errors.New("no fetched records to export")
)
