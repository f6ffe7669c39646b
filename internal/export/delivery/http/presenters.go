package http

import (
	"clockify-exporter/internal/export"
)

// --- Request DTOs ---

type fetchReq struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	StartDate   string `json:"start_date"   binding:"required"`
	EndDate     string `json:"end_date"     binding:"required"`
}

func (r fetchReq) validate() error { return nil }

func (r fetchReq) toInput() (export.FetchInput, error) {
	from, err := parseDate(r.StartDate, "start_date")
	if err != nil {
		return export.FetchInput{}, err
	}
	to, err := parseDate(r.EndDate, "end_date")
	if err != nil {
		return export.FetchInput{}, err
	}
	return export.FetchInput{From: from, To: to}, nil
}

type exportReq struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	StartDate   string `json:"start_date"   binding:"required"`
	EndDate     string `json:"end_date"     binding:"required"`
	IncludeTask bool   `json:"include_task"`
}

func (r exportReq) validate() error { return nil }

func (r exportReq) toInput() (export.ExportInput, error) {
	from, err := parseDate(r.StartDate, "start_date")
	if err != nil {
		return export.ExportInput{}, err
	}
	to, err := parseDate(r.EndDate, "end_date")
	if err != nil {
		return export.ExportInput{}, err
	}
	return export.ExportInput{IncludeTask: r.IncludeTask, From: from, To: to}, nil
}

// --- Response DTOs ---

type workspaceResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type workspacesResp struct {
	Workspaces []workspaceResp `json:"workspaces"`
}

func (h *handler) newWorkspacesResp(out export.WorkspacesOutput) workspacesResp {
	workspaces := make([]workspaceResp, len(out.Workspaces))
	for i, w := range out.Workspaces {
		workspaces[i] = workspaceResp{ID: w.ID, Name: w.Name}
	}
	return workspacesResp{Workspaces: workspaces}
}

type recordResp struct {
	Date           string `json:"date"`
	Project        string `json:"project"`
	Task           string `json:"task"`
	Duration       string `json:"duration"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	DurationMillis int64  `json:"duration_millis"`
}

type fetchResp struct {
	Records       []recordResp `json:"records"`
	Count         int          `json:"count"`
	TotalDuration string       `json:"total_duration"`
}

func (h *handler) newFetchResp(out export.FetchOutput) fetchResp {
	records := make([]recordResp, len(out.ResultSet.Records))
	for i, r := range out.ResultSet.Records {
		records[i] = recordResp{
			Date:           r.Date,
			Project:        r.Project,
			Task:           r.Task,
			Duration:       r.Duration,
			StartTime:      r.StartTime,
			EndTime:        r.EndTime,
			DurationMillis: r.DurationMillis,
		}
	}
	return fetchResp{
		Records:       records,
		Count:         out.ResultSet.Count,
		TotalDuration: out.ResultSet.TotalDuration,
	}
}
