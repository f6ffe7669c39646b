package usecase

import (
	"context"
	"time"

	"clockify-exporter/pkg/clockify"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// fakeSource is a func-field stand-in for the Clockify client.
type fakeSource struct {
	currentUserFunc func(apiKey string) (*clockify.User, error)
	workspacesFunc  func(apiKey string) ([]clockify.Workspace, error)
	timeEntriesFunc func(apiKey string, req clockify.TimeEntriesRequest) ([]clockify.TimeEntry, error)

	calls int
}

func (f *fakeSource) CurrentUser(ctx context.Context, apiKey string) (*clockify.User, error) {
	f.calls++
	if f.currentUserFunc != nil {
		return f.currentUserFunc(apiKey)
	}
	return &clockify.User{ID: "user-1"}, nil
}

func (f *fakeSource) Workspaces(ctx context.Context, apiKey string) ([]clockify.Workspace, error) {
	f.calls++
	if f.workspacesFunc != nil {
		return f.workspacesFunc(apiKey)
	}
	return []clockify.Workspace{{ID: "ws-1", Name: "Acme"}}, nil
}

func (f *fakeSource) TimeEntries(ctx context.Context, apiKey string, req clockify.TimeEntriesRequest) ([]clockify.TimeEntry, error) {
	f.calls++
	if f.timeEntriesFunc != nil {
		return f.timeEntriesFunc(apiKey, req)
	}
	return nil, nil
}

// newTestUseCase builds a use case pinned to UTC with a fixed clock.
func newTestUseCase(source *fakeSource, now time.Time) *implUseCase {
	uc, err := New(&mockLogger{}, source, Config{
		PageSize: 50,
		Timezone: "UTC",
		Now:      func() time.Time { return now },
	})
	if err != nil {
		panic(err)
	}
	return uc
}

func closedEntry(id, description string, start, end time.Time) clockify.TimeEntry {
	return clockify.TimeEntry{
		ID:           id,
		Description:  description,
		TimeInterval: clockify.TimeInterval{Start: start, End: &end},
	}
}

func openEntry(id, description string, start time.Time) clockify.TimeEntry {
	return clockify.TimeEntry{
		ID:           id,
		Description:  description,
		TimeInterval: clockify.TimeInterval{Start: start},
	}
}
