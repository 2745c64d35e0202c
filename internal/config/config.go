// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Layer overrides on top via Load (file, then env).
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"time"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath locates the cutoff CSV dataset on disk.
	DataPath string `koanf:"data_path"`

	// StaleCheckInterval bounds how often the store probes the dataset
	// file for a newer mtime.
	StaleCheckInterval time.Duration `koanf:"stale_check_interval"`

	// WindowSpan widens the near-opening and near-closing candidate tiers.
	WindowSpan int `koanf:"window_span"`

	// NearOpeningCap, InWindowCap and NearClosingCap limit how many
	// records each candidate tier may contribute.
	NearOpeningCap int `koanf:"near_opening_cap"`
	InWindowCap    int `koanf:"in_window_cap"`
	NearClosingCap int `koanf:"near_closing_cap"`

	// DefaultMinProbability filters the preference list when the request
	// does not carry its own threshold.
	DefaultMinProbability float64 `koanf:"default_min_probability"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":9080",
		DataPath:              "data/cutoffs.csv",
		StaleCheckInterval:    30 * time.Second,
		WindowSpan:            200,
		NearOpeningCap:        10,
		InWindowCap:           20,
		NearClosingCap:        20,
		DefaultMinProbability: 0,
	}
}
