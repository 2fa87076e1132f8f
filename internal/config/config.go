package config

import (
	"errors"
	"fmt"
	"time"
)

// Default values applied when a key is missing or zero.
const (
	DefaultMaxInsights = 5
	DefaultWindowSize  = 200
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultServiceName = "lotinsight"
)

// Config holds the complete lotinsight configuration.
type Config struct {
	Analysis  AnalysisConfig  `koanf:"analysis"`
	Logging   LoggingConfig   `koanf:"logging"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// AnalysisConfig controls the analytics core.
type AnalysisConfig struct {
	// MaxInsights caps the ranked pattern insights returned.
	MaxInsights int `koanf:"max_insights"`
	// WindowSize is how many of the newest entries are analysed.
	WindowSize int `koanf:"window_size"`
	// Timezone is an IANA zone used when an entry carries none. Empty means UTC.
	Timezone string `koanf:"timezone"`
}

// LoggingConfig is the file/env view of logging settings.
// logging.FromSection turns it into a full logging.Config.
type LoggingConfig struct {
	Level    string `koanf:"level"`
	Format   string `koanf:"format"`
	OTEL     bool   `koanf:"otel"`
	Sampling *bool  `koanf:"sampling"`
	// Redact masks reflection free text in log output. Defaults to on.
	Redact *bool `koanf:"redact"`
}

// TelemetryConfig is the file/env view of telemetry settings.
type TelemetryConfig struct {
	Enabled        bool     `koanf:"enabled"`
	Endpoint       string   `koanf:"endpoint"`
	Protocol       string   `koanf:"protocol"`
	ServiceName    string   `koanf:"service_name"`
	Insecure       bool     `koanf:"insecure"`
	TLSSkipVerify  bool     `koanf:"tls_skip_verify"`
	SampleRate     *float64 `koanf:"sample_rate"`
	ExportInterval Duration `koanf:"export_interval"`
}

// MetricsConfig controls the Prometheus textfile written after batch runs.
type MetricsConfig struct {
	// Textfile is the output path. Empty disables the export.
	Textfile string `koanf:"textfile"`
}

// Default returns a config populated with defaults only.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Location resolves Analysis.Timezone, falling back to UTC when empty.
func (c *Config) Location() (*time.Location, error) {
	if c.Analysis.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Analysis.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Analysis.Timezone, err)
	}
	return loc, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Analysis.MaxInsights < 1 {
		return fmt.Errorf("analysis.max_insights must be positive, got %d", c.Analysis.MaxInsights)
	}
	if c.Analysis.WindowSize < 1 {
		return fmt.Errorf("analysis.window_size must be positive, got %d", c.Analysis.WindowSize)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", c.Logging.Format)
	}
	if c.Telemetry.SampleRate != nil && (*c.Telemetry.SampleRate < 0 || *c.Telemetry.SampleRate > 1) {
		return fmt.Errorf("telemetry.sample_rate must be between 0 and 1, got %f", *c.Telemetry.SampleRate)
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return errors.New("telemetry.endpoint required when telemetry is enabled")
	}
	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Analysis.MaxInsights == 0 {
		cfg.Analysis.MaxInsights = DefaultMaxInsights
	}
	if cfg.Analysis.WindowSize == 0 {
		cfg.Analysis.WindowSize = DefaultWindowSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = DefaultServiceName
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		cfg.Telemetry.Endpoint = "localhost:4317"
	}
}
