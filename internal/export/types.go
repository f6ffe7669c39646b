package export

import "time"

// TimeRecord is one fetched time entry normalized for display and export.
// Day carries the calendar day used as the sort key; Date is the
// formatted label derived from it.
type TimeRecord struct {
	Date           string
	Day            time.Time
	Project        string
	Task           string
	DurationMillis int64
	Duration       string
	StartTime      string
	EndTime        string
}

// ResultSet is the ordered, aggregated output of one fetch. It is held
// in memory until the next fetch replaces it or an export consumes it.
type ResultSet struct {
	Records       []TimeRecord
	Count         int
	TotalMillis   int64
	TotalDuration string
}

// Workspace is a selectable Clockify workspace.
type Workspace struct {
	ID   string
	Name string
}

// --- UseCase Inputs ---

// FetchInput bounds a fetch to an inclusive calendar date range.
type FetchInput struct {
	From time.Time
	To   time.Time
}

// ExportInput configures the spreadsheet export of the cached ResultSet.
type ExportInput struct {
	IncludeTask bool
	From        time.Time
	To          time.Time
}

// --- UseCase Outputs ---

type WorkspacesOutput struct {
	Workspaces []Workspace
}

type FetchOutput struct {
	ResultSet ResultSet
}

type ExportOutput struct {
	Filename string
	Content  []byte
}
