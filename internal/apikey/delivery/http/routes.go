package http

import (
	"github.com/gin-gonic/gin"

	"clockify-exporter/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", h.Get)
	rg.POST("", h.Save)
	rg.DELETE("", h.Delete)
}
