// Package config loads moviereport settings from defaults, an optional YAML
// file and MOVIEREPORT_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of configuration environment variables.
const EnvPrefix = "MOVIEREPORT"

// Config represents the complete application configuration.
// Environment keys follow the field path, e.g. MOVIEREPORT_SERVER_ADDR or
// MOVIEREPORT_OUTPUT_CHARTS_DIR.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig locates the movie workbook
type SourceConfig struct {
	Path  string `yaml:"path" validate:"required"`
	Sheet string `yaml:"sheet" validate:"required"`
}

// OutputConfig locates the generated report and chart images
type OutputConfig struct {
	ReportPath string `yaml:"report_path" split_words:"true" validate:"required"`
	ChartsDir  string `yaml:"charts_dir" split_words:"true" validate:"required"`
	Mode       string `yaml:"mode" validate:"oneof=stats report full"`
}

// ServerConfig contains dashboard HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true" validate:"gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Path:  "movie_data.xlsx",
			Sheet: "Movies rating & review data",
		},
		Output: OutputConfig{
			ReportPath: "movies_analysis_report.xlsx",
			ChartsDir:  "charts",
			Mode:       "full",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Unset variables leave file and default values in place
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays YAML settings onto cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
