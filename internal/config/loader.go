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
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if VITARANK_CONFIG is set
//  3. env (prefix VITARANK_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("VITARANK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: VITARANK_ADDR, VITARANK_WORKER_COUNT, ...
	// Keys stay flat and keep underscores to match the koanf tags; nested
	// weight overrides belong in the config file.
	envProvider := env.Provider("VITARANK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "vitarank_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects structurally invalid configuration. Weights that do not
// sum to 1.0 are a hard failure: a silently renormalized total score would
// no longer be the documented weighted sum.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.RelevanceFloor < 0 || c.RelevanceFloor > 100 {
		return fmt.Errorf("%w: relevance_floor must be in [0,100]", ErrInvalidConfig)
	}
	if c.DefaultLimit < 1 {
		return fmt.Errorf("%w: default_limit must be positive", ErrInvalidConfig)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("%w: max_limit must be >= default_limit", ErrInvalidConfig)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
