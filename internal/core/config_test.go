package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	t.Setenv("CSCREEN_DATA_DIR", "")
	t.Setenv("DEFAULT_MODEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "openai/gpt-4.1", cfg.DefaultModel)
}

func TestLoadConfigDebugOverridesLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEBUG", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigDerivedDirs(t *testing.T) {
	cfg := &Config{DataDir: "work"}

	assert.Equal(t, filepath.Join("work", "regulations"), cfg.RegulationsDir())
	assert.Equal(t, filepath.Join("work", "output"), cfg.OutputDir())
}

func TestLoadConfigNoAPIKeyIsFine(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.OpenRouterAPIKey, "key is only needed once extraction runs")
}
