package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clockify-exporter/internal/export"
	"clockify-exporter/internal/model"
	"clockify-exporter/pkg/clockify"
)

// FetchEntries runs the fetch action: resolve the identity behind the
// credential, pull every time entry in the date range, normalize and
// aggregate them, and replace the cached ResultSet. The two remote
// lookups are sequential because the entry listing needs the user ID.
func (uc *implUseCase) FetchEntries(ctx context.Context, sc model.Scope, input export.FetchInput) (export.FetchOutput, error) {
	if err := validateFetch(sc, input); err != nil {
		return export.FetchOutput{}, err
	}

	key := sc.APIKey + "/" + sc.WorkspaceID
	if !uc.beginFetch(key) {
		return export.FetchOutput{}, export.ErrFetchInProgress
	}
	defer uc.endFetch(key)

	user, err := uc.source.CurrentUser(ctx, sc.APIKey)
	if err != nil {
		if errors.Is(err, clockify.ErrUnauthorized) {
			return export.FetchOutput{}, export.ErrUnauthorized
		}
		uc.l.Errorf(ctx, "FetchEntries: identity lookup: %v", err)
		return export.FetchOutput{}, fmt.Errorf("failed to resolve identity: %w", err)
	}

	raw, err := uc.listAllEntries(ctx, sc, user.ID, input)
	if err != nil {
		uc.l.Errorf(ctx, "FetchEntries: %v", err)
		return export.FetchOutput{}, err
	}

	// One instant for the whole batch so open intervals resolve
	// consistently.
	now := uc.now()

	records := make([]export.TimeRecord, len(raw))
	for i, entry := range raw {
		records[i] = normalizeEntry(entry, now, uc.loc)
		if records[i].DurationMillis < 0 {
			uc.l.Warnf(ctx, "FetchEntries: entry %s has end before start (duration %dms)",
				entry.ID, records[i].DurationMillis)
		}
	}

	rs := aggregate(records)
	uc.setResult(rs)

	uc.l.Infof(ctx, "FetchEntries: user=%s workspace=%s records=%d total=%s",
		user.ID, sc.WorkspaceID, rs.Count, rs.TotalDuration)

	return export.FetchOutput{ResultSet: rs}, nil
}

// listAllEntries follows pages until the upstream reports exhaustion (a
// page shorter than the page size).
func (uc *implUseCase) listAllEntries(ctx context.Context, sc model.Scope, userID string, input export.FetchInput) ([]clockify.TimeEntry, error) {
	from, to := dayBoundsUTC(input.From, input.To)

	var all []clockify.TimeEntry
	for page := 1; ; page++ {
		batch, err := uc.source.TimeEntries(ctx, sc.APIKey, clockify.TimeEntriesRequest{
			WorkspaceID: sc.WorkspaceID,
			UserID:      userID,
			Start:       from,
			End:         to,
			Page:        page,
			PageSize:    uc.pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch time entries (page %d): %w", page, err)
		}

		all = append(all, batch...)
		if len(batch) < uc.pageSize {
			return all, nil
		}
	}
}

// validateFetch checks the scope and range before any remote call.
func validateFetch(sc model.Scope, input export.FetchInput) error {
	if sc.APIKey == "" {
		return export.ErrMissingAPIKey
	}
	if sc.WorkspaceID == "" {
		return export.ErrMissingWorkspace
	}
	if input.From.After(input.To) {
		return export.ErrInvalidDateRange
	}
	return nil
}

// dayBoundsUTC widens two calendar dates to the full UTC day range
// [from 00:00:00.000, to 23:59:59.999].
func dayBoundsUTC(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return start, end
}
