package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apikeyHTTP "clockify-exporter/internal/apikey/delivery/http"
	exportHTTP "clockify-exporter/internal/export/delivery/http"
	"clockify-exporter/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	exportHTTP.RegisterRoutes(api.Group("/export"), exportHTTP.New(srv.l, srv.exportUC), mw)
	srv.l.Infof(ctx, "Export domain registered under /api/v1/export")

	apikeyHTTP.RegisterRoutes(api.Group("/key"), apikeyHTTP.New(srv.l, srv.apikeyUC), mw)
	srv.l.Infof(ctx, "APIKey domain registered under /api/v1/key")
}
