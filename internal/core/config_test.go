package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("DEFAULT_MODEL", "")
	t.Setenv("REQSTAGE_DIR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", cfg.DefaultModel)
	assert.Equal(t, ".reqstage", cfg.DataDir)
	assert.Empty(t, cfg.OpenRouterAPIKey)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEBUG", "")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-v1-test")
	t.Setenv("DEFAULT_MODEL", "google/gemini-2.5-flash")
	t.Setenv("REQSTAGE_DIR", "/tmp/history")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "sk-or-v1-test", cfg.OpenRouterAPIKey)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.DefaultModel)
	assert.Equal(t, "/tmp/history", cfg.DataDir)
}

func TestLoadConfigDebugOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEBUG", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
