package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clockify-exporter/internal/apikey"
	"clockify-exporter/internal/export"
	"clockify-exporter/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	exportUC export.UseCase
	apikeyUC apikey.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	ExportUseCase export.UseCase
	APIKeyUseCase apikey.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		exportUC:    cfg.ExportUseCase,
		apikeyUC:    cfg.APIKeyUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.exportUC == nil {
		return errors.New("export use case is required")
	}
	if srv.apikeyUC == nil {
		return errors.New("apikey use case is required")
	}
	return nil
}
