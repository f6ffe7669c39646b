package usecase

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"clockify-exporter/internal/export"
	"clockify-exporter/internal/model"
)

// exportFilenameFormat renders the range dates inside the download name.
const exportFilenameFormat = "2006-01-02"

// ExportFile serializes the last fetched ResultSet into an XLSX
// workbook: one row per record, a final totals row, fixed column
// widths. The Task column is blanked (not dropped) when IncludeTask is
// false; the totals row is appended either way.
func (uc *implUseCase) ExportFile(ctx context.Context, sc model.Scope, input export.ExportInput) (export.ExportOutput, error) {
	rs := uc.currentResult()
	if rs == nil || rs.Count == 0 {
		return export.ExportOutput{}, export.ErrNothingToExport
	}

	content, err := uc.buildWorkbook(*rs, input.IncludeTask)
	if err != nil {
		uc.l.Errorf(ctx, "ExportFile: %v", err)
		return export.ExportOutput{}, fmt.Errorf("failed to build workbook: %w", err)
	}

	filename := fmt.Sprintf("Clockify_Export_%s_to_%s.xlsx",
		input.From.Format(exportFilenameFormat), input.To.Format(exportFilenameFormat))

	uc.l.Infof(ctx, "ExportFile: %s (%d records, %d bytes)", filename, rs.Count, len(content))

	return export.ExportOutput{Filename: filename, Content: content}, nil
}

func (uc *implUseCase) buildWorkbook(rs export.ResultSet, includeTask bool) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := uc.sheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	rows := make([][]any, 0, rs.Count+2)
	rows = append(rows, []any{"Date", "Task", "Duration", "Start Time", "End Time"})

	for _, r := range rs.Records {
		task := r.Task
		if !includeTask {
			task = ""
		}
		rows = append(rows, []any{r.Date, task, r.Duration, r.StartTime, r.EndTime})
	}

	// Summary row: only the Duration column carries the total.
	rows = append(rows, []any{"", "", rs.TotalDuration, "", ""})

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}

	for col, width := range map[string]float64{"A": 12, "B": 30, "C": 12, "D": 12, "E": 12} {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
