package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, "statement-engine", cfg.Application.Name)
	assert.Equal(t, "development", cfg.Application.Env)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Engine.MultiPassExtraction)
	assert.InDelta(t, 0.5, cfg.Engine.ConfidenceThreshold, 1e-9)
	assert.Equal(t, 4, cfg.WorkerPool.Size)
	assert.Equal(t, "csv", cfg.Export.Format)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENGINE_MULTI_PASS", "true")
	t.Setenv("WORKER_POOL_SIZE", "8")
	t.Setenv("EXPORT_FORMAT", "xlsx")

	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Engine.MultiPassExtraction)
	assert.Equal(t, 8, cfg.WorkerPool.Size)
	assert.Equal(t, "xlsx", cfg.Export.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"zero port", "SERVER_PORT", "0"},
		{"threshold above one", "ENGINE_CONFIDENCE_THRESHOLD", "1.5"},
		{"zero pool size", "WORKER_POOL_SIZE", "0"},
		{"bad export format", "EXPORT_FORMAT", "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load("does-not-exist")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}
