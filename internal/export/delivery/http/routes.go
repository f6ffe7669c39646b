package http

import (
	"github.com/gin-gonic/gin"

	"clockify-exporter/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/workspaces", h.Workspaces)
	rg.POST("/entries", h.FetchEntries)
	rg.POST("/file", h.ExportFile)
}
