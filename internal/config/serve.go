// Package config loads optional JSON configuration for the serve
// command. Fields are pointer-typed so a partial config file only
// overrides what it names; command-line flags win over the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ServeConfig configures the catalogue HTTP server.
type ServeConfig struct {
	ListenAddr      *string `json:"listen_addr,omitempty"`
	CataloguePath   *string `json:"catalogue_path,omitempty"`
	MaxChartPoints  *int    `json:"max_chart_points,omitempty"`
	ShutdownTimeout *string `json:"shutdown_timeout,omitempty"` // duration string like "5s"
}

// EmptyServeConfig returns a ServeConfig with all fields set to nil, so
// every Get* accessor reports its default.
func EmptyServeConfig() *ServeConfig {
	return &ServeConfig{}
}

// LoadServeConfig loads a ServeConfig from a JSON file. The file must
// have a .json extension and stay under the max file size. Fields
// omitted from the JSON keep their defaults, so partial configs are
// safe.
func LoadServeConfig(path string) (*ServeConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyServeConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *ServeConfig) Validate() error {
	if c.MaxChartPoints != nil {
		if *c.MaxChartPoints < 100 || *c.MaxChartPoints > 50000 {
			return fmt.Errorf("max_chart_points must be between 100 and 50000, got %d", *c.MaxChartPoints)
		}
	}
	if c.ShutdownTimeout != nil && *c.ShutdownTimeout != "" {
		if _, err := time.ParseDuration(*c.ShutdownTimeout); err != nil {
			return fmt.Errorf("invalid shutdown_timeout '%s': %w", *c.ShutdownTimeout, err)
		}
	}
	return nil
}

// GetListenAddr returns the listen_addr value or the default.
func (c *ServeConfig) GetListenAddr() string {
	if c.ListenAddr == nil || *c.ListenAddr == "" {
		return ":8080"
	}
	return *c.ListenAddr
}

// GetCataloguePath returns the catalogue_path value or the default.
func (c *ServeConfig) GetCataloguePath() string {
	if c.CataloguePath == nil || *c.CataloguePath == "" {
		return "scenario_catalogue.db"
	}
	return *c.CataloguePath
}

// GetMaxChartPoints returns the max_chart_points value or the default.
func (c *ServeConfig) GetMaxChartPoints() int {
	if c.MaxChartPoints == nil {
		return 8000
	}
	return *c.MaxChartPoints
}

// GetShutdownTimeout parses and returns the ShutdownTimeout as a
// time.Duration.
func (c *ServeConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == nil || *c.ShutdownTimeout == "" {
		return 5 * time.Second
	}
	d, err := time.ParseDuration(*c.ShutdownTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}
