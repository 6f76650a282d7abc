// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"

	"github.com/okian/vitarank/internal/domain/scoring"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// WorkerCount sets the number of scoring workers per rank call.
	WorkerCount int `koanf:"worker_count"`

	// RelevanceFloor is the minimum total score a product must reach to
	// appear in ranked results.
	RelevanceFloor int `koanf:"relevance_floor"`

	// DefaultLimit is the result page size when a request omits a limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the per-request result limit.
	MaxLimit int `koanf:"max_limit"`

	// CatalogPath points at the YAML product catalog loaded at startup.
	CatalogPath string `koanf:"catalog_path"`

	// TablesPath optionally overrides the built-in scoring tables.
	TablesPath string `koanf:"tables_path"`

	// RateLimitRPS and RateLimitBurst throttle the match endpoint.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// Weights are the five composer weights; they must sum to 1.0.
	Weights scoring.Weights `koanf:"weights"`
}

// New creates a Config using defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		WorkerCount:    runtime.NumCPU(),
		RelevanceFloor: 30,
		DefaultLimit:   10,
		MaxLimit:       100,
		RateLimitRPS:   50,
		RateLimitBurst: 100,
		Weights:        scoring.DefaultWeights(),
	}
}
