package usecase

import (
	"fmt"
	"time"

	"clockify-exporter/internal/export"
	"clockify-exporter/pkg/clockify"
)

// Display formats. Dates render like "3/1/2024", clock times like
// "09:00:00 AM", durations as decimal hours ("1.50h").
const (
	dateLabelFormat  = "1/2/2006"
	clockLabelFormat = "03:04:05 PM"
)

// Fallback labels when Clockify returns no project or description.
const (
	noProjectLabel = "No Project"
	noTaskLabel    = "No Description"
)

// normalizeEntry converts one raw time entry into a display record. An
// open interval (no end) resolves to now, which the caller captures once
// per fetch so the whole batch shares the same instant. A negative
// duration (end before start) is kept as-is so malformed upstream data
// stays visible instead of being clamped away.
func normalizeEntry(e clockify.TimeEntry, now time.Time, loc *time.Location) export.TimeRecord {
	start := e.TimeInterval.Start
	end := now
	if e.TimeInterval.End != nil {
		end = *e.TimeInterval.End
	}

	durationMillis := end.Sub(start).Milliseconds()

	project := e.ProjectName
	if project == "" {
		project = noProjectLabel
	}
	task := e.Description
	if task == "" {
		task = noTaskLabel
	}

	localStart := start.In(loc)

	return export.TimeRecord{
		Date:           localStart.Format(dateLabelFormat),
		Day:            dayOf(localStart),
		Project:        project,
		Task:           task,
		DurationMillis: durationMillis,
		Duration:       formatHours(durationMillis),
		StartTime:      localStart.Format(clockLabelFormat),
		EndTime:        end.In(loc).Format(clockLabelFormat),
	}
}

// formatHours renders milliseconds as hours with two decimals, e.g.
// 5400000 -> "1.50h".
func formatHours(millis int64) string {
	return fmt.Sprintf("%.2fh", float64(millis)/float64(time.Hour/time.Millisecond))
}

// dayOf truncates t to midnight in its location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
