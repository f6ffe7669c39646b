package clockify

import "time"

// User is the Clockify API user object, trimmed to the fields we read.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Workspace is a Clockify workspace.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TimeInterval is the tracked span of a time entry. End is nil while the
// entry is still running.
type TimeInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

// TimeEntry is a Clockify time entry as returned by the time-entries listing.
type TimeEntry struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	ProjectName  string       `json:"projectName"`
	TimeInterval TimeInterval `json:"timeInterval"`
}

// TimeEntriesRequest bounds a time-entries listing call.
type TimeEntriesRequest struct {
	WorkspaceID string
	UserID      string
	Start       time.Time
	End         time.Time
	Page        int
	PageSize    int
}
