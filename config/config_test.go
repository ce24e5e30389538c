package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, Validate(cfg))
	assert.Equal(t, 20, cfg.DefaultLimit)
	assert.Equal(t, 1000, cfg.MaxLimit)
	assert.Equal(t, int64(60), cfg.MinSpanSeconds)
	assert.Equal(t, int64(3600), cfg.LookbackSeconds)
	assert.Equal(t, 10, cfg.Overfetch)
	assert.Equal(t, "logsift", cfg.Metrics.Namespace)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.MaxLimit = 5 // below default_limit
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Overfetch = -1
	assert.Error(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logsift.yaml")
	data := []byte("default_limit: 5\nmin_span_seconds: 120\nmetrics:\n  enabled: true\n")
	assert.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.DefaultLimit)
	assert.Equal(t, int64(120), cfg.MinSpanSeconds)
	assert.True(t, cfg.Metrics.Enabled)
	// Unset fields still pick up defaults.
	assert.Equal(t, 1000, cfg.MaxLimit)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
