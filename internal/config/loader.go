package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if SEATCAST_CONFIG is set
//  3. env (prefix SEATCAST_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SEATCAST_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SEATCAST_ADDR, SEATCAST_DATA_PATH, ...
	// Map env keys like SEATCAST_DATA_PATH -> data_path (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SEATCAST_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "seatcast_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DataPath == "" {
		return nil, fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	}
	if cfg.WindowSpan < 0 {
		return nil, fmt.Errorf("%w: window_span must not be negative", ErrInvalidConfig)
	}
	if cfg.DefaultMinProbability < 0 || cfg.DefaultMinProbability > 100 {
		return nil, fmt.Errorf("%w: default_min_probability must be within [0, 100]", ErrInvalidConfig)
	}
	return &cfg, nil
}
