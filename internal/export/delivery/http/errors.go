package http

import (
	"errors"
	"net/http"

	"clockify-exporter/internal/export"
	"clockify-exporter/pkg/clockify"
	pkgErrors "clockify-exporter/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors. Unknown
// errors become an opaque 500 so upstream bodies never leak through.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, export.ErrMissingAPIKey),
		errors.Is(err, export.ErrMissingWorkspace),
		errors.Is(err, export.ErrInvalidDateRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, export.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, export.ErrFetchInProgress):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, export.ErrNoWorkspaces):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, export.ErrNothingToExport):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var apiErr *clockify.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPErrorf(http.StatusBadGateway,
			"time-tracking service returned status %d", apiErr.StatusCode)
	}

	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
}
