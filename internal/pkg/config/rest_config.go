package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RestConfig is the configuration of the REST service: listen port, logger
// settings and the secure-store database connection.
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
}

// InitializeRestConfig loads and validates the REST service configuration
// from a YAML file.
func InitializeRestConfig(path string) (*RestConfig, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg RestConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("port is required")
	}
	if err := cfg.Logger.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database settings: %w", err)
	}

	return &cfg, nil
}
