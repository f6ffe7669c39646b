package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"clockify-exporter/internal/model"
	"clockify-exporter/pkg/response"
)

// xlsxContentType is the MIME type of the exported workbook.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// scopeFrom builds the request scope from the credential header and an
// optional workspace id.
func scopeFrom(c *gin.Context, workspaceID string) model.Scope {
	return model.Scope{
		APIKey:      c.GetHeader("X-Api-Key"),
		WorkspaceID: workspaceID,
	}
}

// Workspaces godoc
// @Summary     List workspaces
// @Description Lists the Clockify workspaces visible to the presented API key.
// @Tags        Export
// @Produce     json
// @Param       X-Api-Key header string true "Clockify API key"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing API key"
// @Failure     401 {object} response.Resp "Rejected API key"
// @Router      /api/v1/export/workspaces [GET]
func (h *handler) Workspaces(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Workspaces(ctx, scopeFrom(c, ""))
	if err != nil {
		h.l.Errorf(ctx, "uc.Workspaces: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWorkspacesResp(output))
}

// FetchEntries godoc
// @Summary     Fetch time entries
// @Description Fetches, normalizes and aggregates the time entries in a date range. The result replaces the previously fetched set.
// @Tags        Export
// @Accept      json
// @Produce     json
// @Param       X-Api-Key header string   true "Clockify API key"
// @Param       body      body   fetchReq true "Workspace and date range"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     401 {object} response.Resp "Rejected API key"
// @Failure     409 {object} response.Resp "Fetch already running"
// @Router      /api/v1/export/entries [POST]
func (h *handler) FetchEntries(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFetchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.FetchEntries(ctx, scopeFrom(c, req.WorkspaceID), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.FetchEntries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFetchResp(output))
}

// ExportFile godoc
// @Summary     Export the fetched entries
// @Description Serializes the last fetched result set into an XLSX download with a totals row.
// @Tags        Export
// @Accept      json
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       X-Api-Key header string    true "Clockify API key"
// @Param       body      body   exportReq true "Export options and date range"
// @Success     200 {file}   binary
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     422 {object} response.Resp "Nothing to export"
// @Router      /api/v1/export/file [POST]
func (h *handler) ExportFile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportFile(ctx, scopeFrom(c, req.WorkspaceID), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportFile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, xlsxContentType, output.Content)
}
