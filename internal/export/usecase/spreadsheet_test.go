package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"clockify-exporter/internal/export"
	"clockify-exporter/internal/model"
	"clockify-exporter/pkg/clockify"
)

func TestExportFile(t *testing.T) {
	ctx := context.Background()
	scope := model.Scope{APIKey: "key-1", WorkspaceID: "ws-1"}
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	fetch := func(t *testing.T, uc *implUseCase) {
		t.Helper()
		if _, err := uc.FetchEntries(ctx, scope, export.FetchInput{From: from, To: to}); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
	}

	twoEntrySource := func() *fakeSource {
		aStart := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		bStart := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
		return &fakeSource{
			timeEntriesFunc: func(string, clockify.TimeEntriesRequest) ([]clockify.TimeEntry, error) {
				return []clockify.TimeEntry{
					closedEntry("a", "Design", aStart, aStart.Add(90*time.Minute)),
					closedEntry("b", "Review", bStart, bStart.Add(15*time.Minute)),
				}, nil
			},
		}
	}

	readRows := func(t *testing.T, content []byte) [][]string {
		t.Helper()
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			t.Fatalf("reopen workbook: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows("Time Entries")
		if err != nil {
			t.Fatalf("read sheet: %v", err)
		}
		return rows
	}

	t.Run("Nothing Fetched Yet", func(t *testing.T) {
		uc := newTestUseCase(&fakeSource{}, to)
		_, err := uc.ExportFile(ctx, scope, export.ExportInput{From: from, To: to})
		if !errors.Is(err, export.ErrNothingToExport) {
			t.Errorf("expected ErrNothingToExport, got %v", err)
		}
	})

	t.Run("Empty Result Set", func(t *testing.T) {
		uc := newTestUseCase(&fakeSource{}, to)
		fetch(t, uc)

		_, err := uc.ExportFile(ctx, scope, export.ExportInput{From: from, To: to})
		if !errors.Is(err, export.ErrNothingToExport) {
			t.Errorf("expected ErrNothingToExport on empty set, got %v", err)
		}
	})

	t.Run("Workbook Layout With Tasks", func(t *testing.T) {
		uc := newTestUseCase(twoEntrySource(), to)
		fetch(t, uc)

		out, err := uc.ExportFile(ctx, scope, export.ExportInput{IncludeTask: true, From: from, To: to})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filename != "Clockify_Export_2024-03-01_to_2024-03-31.xlsx" {
			t.Errorf("unexpected filename: %s", out.Filename)
		}

		rows := readRows(t, out.Content)
		if len(rows) != 4 { // header + 2 records + summary
			t.Fatalf("expected 4 rows, got %d", len(rows))
		}
		wantHeader := []string{"Date", "Task", "Duration", "Start Time", "End Time"}
		for i, h := range wantHeader {
			if rows[0][i] != h {
				t.Errorf("header %d: expected %s, got %s", i, h, rows[0][i])
			}
		}
		// Newest day first.
		if rows[1][0] != "3/2/2024" || rows[1][1] != "Review" || rows[1][2] != "0.25h" {
			t.Errorf("unexpected first record row: %v", rows[1])
		}
		if rows[2][0] != "3/1/2024" || rows[2][1] != "Design" || rows[2][2] != "1.50h" {
			t.Errorf("unexpected second record row: %v", rows[2])
		}
		// Summary row carries only the total duration.
		summary := rows[3]
		if len(summary) < 3 || summary[2] != "1.75h" {
			t.Errorf("unexpected summary row: %v", summary)
		}
		if summary[0] != "" || summary[1] != "" {
			t.Errorf("summary row should blank non-duration columns: %v", summary)
		}
	})

	t.Run("Task Column Blanked But Summary Kept", func(t *testing.T) {
		uc := newTestUseCase(twoEntrySource(), to)
		fetch(t, uc)

		out, err := uc.ExportFile(ctx, scope, export.ExportInput{IncludeTask: false, From: from, To: to})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows := readRows(t, out.Content)
		for i := 1; i <= 2; i++ {
			if len(rows[i]) > 1 && rows[i][1] != "" {
				t.Errorf("record row %d: expected blank task, got %q", i, rows[i][1])
			}
		}
		if rows[3][2] != "1.75h" {
			t.Errorf("summary must be unchanged without tasks: %v", rows[3])
		}
	})
}
