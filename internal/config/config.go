package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/couchcryptid/weather-codes/pkg/weather/openmeteo"
	"github.com/couchcryptid/weather-codes/pkg/weather/wmo4677"
)

// Tables lists the table names a configuration may refer to.
var Tables = []string{wmo4677.Name, openmeteo.Name}

// Config holds all tool and server settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DefaultTable is used by commands when no table is named explicitly.
	DefaultTable string
	// ExportFormat is "json" or "yaml".
	ExportFormat string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		DefaultTable:    sharedcfg.EnvOrDefault("DEFAULT_TABLE", wmo4677.Name),
		ExportFormat:    sharedcfg.EnvOrDefault("EXPORT_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that may also have been overridden by command-line flags.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR is required")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("invalid LOG_FORMAT %q: want json or text", c.LogFormat)
	}
	if !slices.Contains(Tables, c.DefaultTable) {
		return fmt.Errorf("invalid DEFAULT_TABLE %q: want one of %v", c.DefaultTable, Tables)
	}
	if c.ExportFormat != "json" && c.ExportFormat != "yaml" {
		return fmt.Errorf("invalid EXPORT_FORMAT %q: want json or yaml", c.ExportFormat)
	}
	return nil
}
