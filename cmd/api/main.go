package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clockify-exporter/config"
	_ "clockify-exporter/docs" // Swagger docs
	apikeyFile "clockify-exporter/internal/apikey/repository/file"
	apikeyUC "clockify-exporter/internal/apikey/usecase"
	exportUC "clockify-exporter/internal/export/usecase"
	"clockify-exporter/internal/httpserver"
	"clockify-exporter/pkg/clockify"
	"clockify-exporter/pkg/log"
)

// @title       Clockify Exporter API
// @description Fetches Clockify time entries, normalizes them and exports an XLSX workbook.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Clockify Exporter...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Clockify API: %s", cfg.Clockify.BaseURL)

	// 3. Export domain
	source := clockify.NewClient(cfg.Clockify.BaseURL, cfg.Clockify.Timeout)
	exportUseCase, err := exportUC.New(logger, source, exportUC.Config{
		PageSize:          cfg.Clockify.PageSize,
		Timezone:          cfg.Clockify.Timezone,
		SheetName:         cfg.Export.SheetName,
		WorkspaceCacheTTL: cfg.Export.WorkspaceCacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize export use case: ", err)
		return
	}

	// 4. APIKey domain
	keyStore := apikeyFile.New(logger, cfg.APIKey.FilePath)
	apikeyUseCase := apikeyUC.New(logger, keyStore)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		ExportUseCase: exportUseCase,
		APIKeyUseCase: apikeyUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
