package http

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "clockify-exporter/pkg/errors"
)

// requestDateFormat is the calendar date format accepted from clients.
const requestDateFormat = "2006-01-02"

// processFetchReq binds and validates the fetch request body.
func (h *handler) processFetchReq(c *gin.Context) (fetchReq, error) {
	var req fetchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(400, "invalid request body: %v", err)
	}
	return req, req.validate()
}

// processExportReq binds and validates the export request body.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(400, "invalid request body: %v", err)
	}
	return req, req.validate()
}

// parseDate parses a calendar date, rejecting anything with a time part.
func parseDate(value, field string) (time.Time, error) {
	d, err := time.ParseInLocation(requestDateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, pkgErrors.NewHTTPErrorf(400, "%s must be a date in YYYY-MM-DD form", field)
	}
	return d, nil
}
