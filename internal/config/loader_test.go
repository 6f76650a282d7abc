package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/okian/vitarank/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":9080", cfg.Addr)
	assert.Equal(t, 30, cfg.RelevanceFloor)
	assert.Equal(t, 10, cfg.DefaultLimit)
	assert.Equal(t, 100, cfg.MaxLimit)
	assert.Positive(t, cfg.WorkerCount)
	assert.InDelta(t, 1.0, cfg.Weights.Sum(), 1e-9)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VITARANK_ADDR", ":7070")
	t.Setenv("VITARANK_LOG_LEVEL", "debug")
	t.Setenv("VITARANK_RELEVANCE_FLOOR", "40")
	t.Setenv("VITARANK_DEFAULT_LIMIT", "5")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 40, cfg.RelevanceFloor)
	assert.Equal(t, 5, cfg.DefaultLimit)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
addr: ":6060"
worker_count: 3
weights:
  goal_fit: 0.5
  ingredient_alignment: 0.2
  safety_profile: 0.2
  credibility: 0.05
  personalization: 0.05
`)
	require.NoError(t, os.WriteFile(path, content, 0600))
	t.Setenv("VITARANK_CONFIG", path)

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ":6060", cfg.Addr)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, 0.5, cfg.Weights.GoalFit)
	assert.InDelta(t, 1.0, cfg.Weights.Sum(), 1e-9)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":6060\"\n"), 0600))
	t.Setenv("VITARANK_CONFIG", path)
	t.Setenv("VITARANK_ADDR", ":5050")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ":5050", cfg.Addr)
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative floor", key: "VITARANK_RELEVANCE_FLOOR", value: "-1"},
		{name: "floor above 100", key: "VITARANK_RELEVANCE_FLOOR", value: "150"},
		{name: "zero default limit", key: "VITARANK_DEFAULT_LIMIT", value: "0"},
		{name: "max below default", key: "VITARANK_MAX_LIMIT", value: "5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load(context.Background())
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadInvalidWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
weights:
  goal_fit: 0.9
  ingredient_alignment: 0.9
  safety_profile: 0.0
  credibility: 0.0
  personalization: 0.0
`)
	require.NoError(t, os.WriteFile(path, content, 0600))
	t.Setenv("VITARANK_CONFIG", path)

	_, err := config.Load(context.Background())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("VITARANK_CONFIG", "/does/not/exist.yaml")

	_, err := config.Load(context.Background())
	assert.ErrorIs(t, err, config.ErrLoadConfig)
}
