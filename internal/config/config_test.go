package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Entities.LowStockThreshold)
	assert.Equal(t, 5, cfg.Entities.TopProductsLimit)
	assert.Equal(t, 5, cfg.Entities.TopCustomersLimit)
	assert.False(t, cfg.ML.Enabled)
	assert.Equal(t, 0.7, cfg.ML.MinConfidence)
	assert.Equal(t, 2*time.Second, cfg.ML.Timeout)
	require.NoError(t, cfg.validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Entities, cfg.Entities)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("entities:\n  low_stock_threshold: 3\nml:\n  enabled: true\n  min_confidence: 0.8\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Entities.LowStockThreshold)
	// Unset keys keep their defaults.
	assert.Equal(t, 5, cfg.Entities.TopProductsLimit)
	assert.True(t, cfg.ML.Enabled)
	assert.Equal(t, 0.8, cfg.ML.MinConfidence)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VAANI_ML_API_KEY", "test-key")
	t.Setenv("VAANI_DEBUG", "1")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.ML.APIKey)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ml:\n  min_confidence: 1.5\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
