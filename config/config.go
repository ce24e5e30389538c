// Package config holds the tunable defaults for query building and sampling.
// Configuration is optional: Default() is safe for production use and the
// zero value of every field is replaced by ApplyDefaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls query building and sampling behavior.
type Config struct {
	// DefaultLimit is the sample size used when a caller omits one.
	DefaultLimit int `yaml:"default_limit"`
	// MaxLimit caps both the sample size and the number of records fetched
	// from the backend for a single query.
	MaxLimit int `yaml:"max_limit"`
	// MinSpanSeconds is the minimum width of a validated time range.
	MinSpanSeconds int64 `yaml:"min_span_seconds"`
	// LookbackSeconds is the default query window when no from time is given.
	LookbackSeconds int64 `yaml:"lookback_seconds"`
	// Overfetch multiplies the sample limit when fetching for the spread and
	// diverse modes, which need a larger universe than the limit to be
	// representative.
	Overfetch int `yaml:"overfetch"`

	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig controls prometheus metric registration.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields in place.
func ApplyDefaults(cfg *Config) {
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit == 0 {
		cfg.MaxLimit = 1000
	}
	if cfg.MinSpanSeconds == 0 {
		cfg.MinSpanSeconds = 60
	}
	if cfg.LookbackSeconds == 0 {
		cfg.LookbackSeconds = 3600
	}
	if cfg.Overfetch == 0 {
		cfg.Overfetch = 10
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "logsift"
	}
}

// Validate reports the first configuration error found.
func Validate(cfg *Config) error {
	if cfg.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be positive, got %d", cfg.DefaultLimit)
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", cfg.MaxLimit, cfg.DefaultLimit)
	}
	if cfg.MinSpanSeconds < 1 {
		return fmt.Errorf("min_span_seconds must be positive, got %d", cfg.MinSpanSeconds)
	}
	if cfg.LookbackSeconds < 1 {
		return fmt.Errorf("lookback_seconds must be positive, got %d", cfg.LookbackSeconds)
	}
	if cfg.Overfetch < 1 {
		return fmt.Errorf("overfetch must be >= 1, got %d", cfg.Overfetch)
	}
	return nil
}

// Load reads a YAML configuration file, applies defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config %q: %w", path, err)
	}
	return &cfg, nil
}
