package usecase

import (
	"sort"

	"clockify-exporter/internal/export"
)

// aggregate orders records by calendar day, newest first, and computes
// the totals. The sort is stable and keyed on the day only, so records
// from the same day keep the order the upstream service returned them
// in. The total is summed over raw milliseconds and formatted once,
// never from the per-record labels, so rounding does not compound.
func aggregate(records []export.TimeRecord) export.ResultSet {
	ordered := make([]export.TimeRecord, len(records))
	copy(ordered, records)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Day.After(ordered[j].Day)
	})

	var totalMillis int64
	for _, r := range ordered {
		totalMillis += r.DurationMillis
	}

	return export.ResultSet{
		Records:       ordered,
		Count:         len(ordered),
		TotalMillis:   totalMillis,
		TotalDuration: formatHours(totalMillis),
	}
}
