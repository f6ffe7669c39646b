package http

import (
	"github.com/gin-gonic/gin"

	"clockify-exporter/internal/export"
	"clockify-exporter/pkg/log"
)

// Handler is the public interface for the export HTTP delivery layer.
type Handler interface {
	Workspaces(c *gin.Context)
	FetchEntries(c *gin.Context)
	ExportFile(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc export.UseCase
}

// New creates a new HTTP handler for the export domain.
func New(l log.Logger, uc export.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
