package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Clockify exporter specifics
	Clockify ClockifyConfig
	APIKey   APIKeyConfig
	Export   ExportConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ClockifyConfig configures the outbound Clockify API client.
type ClockifyConfig struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
	Timezone string
}

// APIKeyConfig configures the local credential store.
type APIKeyConfig struct {
	FilePath string
}

// ExportConfig configures the export pipeline.
type ExportConfig struct {
	SheetName         string
	WorkspaceCacheTTL time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Clockify client
	cfg.Clockify.BaseURL = viper.GetString("clockify.base_url")
	cfg.Clockify.Timeout = viper.GetDuration("clockify.timeout")
	cfg.Clockify.PageSize = viper.GetInt("clockify.page_size")
	cfg.Clockify.Timezone = viper.GetString("clockify.timezone")
	if base := viper.GetString("clockify_base_url"); base != "" {
		cfg.Clockify.BaseURL = base
	}

	if cfg.Clockify.PageSize <= 0 {
		return nil, fmt.Errorf("clockify.page_size must be positive, got %d", cfg.Clockify.PageSize)
	}

	// Credential store
	cfg.APIKey.FilePath = viper.GetString("apikey.file_path")
	if keyPath := viper.GetString("apikey_file_path"); keyPath != "" {
		cfg.APIKey.FilePath = keyPath
	}

	// Export pipeline
	cfg.Export.SheetName = viper.GetString("export.sheet_name")
	cfg.Export.WorkspaceCacheTTL = viper.GetDuration("export.workspace_cache_ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("clockify.base_url", "https://api.clockify.me/api/v1")
	viper.SetDefault("clockify.timeout", "30s")
	viper.SetDefault("clockify.page_size", 5000)
	viper.SetDefault("clockify.timezone", "Local")

	viper.SetDefault("apikey.file_path", "api_key.txt")

	viper.SetDefault("export.sheet_name", "Time Entries")
	viper.SetDefault("export.workspace_cache_ttl", "5m")
}
