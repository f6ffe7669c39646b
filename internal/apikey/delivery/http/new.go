package http

import (
	"github.com/gin-gonic/gin"

	"clockify-exporter/internal/apikey"
	"clockify-exporter/pkg/log"
)

// Handler is the public interface for the apikey HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Save(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc apikey.UseCase
}

// New creates a new HTTP handler for the apikey domain.
func New(l log.Logger, uc apikey.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
