package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "calexpand.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.MaxInstances)
	assert.Equal(t, "+00:00", cfg.DefaultOffset)
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, "info", cfg.LogLevel)

	// The default file was written with restrictive permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calexpand.yaml")
	body := []byte("max_instances: 25\ndefault_offset: \"+10:00\"\nlog_level: debug\nreport_dates:\n  - \"2025-07-24\"\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.MaxInstances)
	assert.Equal(t, "+10:00", cfg.DefaultOffset)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"2025-07-24"}, cfg.ReportDates)

	// Unspecified fields are normalized to defaults.
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, "*/15 * * * *", cfg.RefreshCron)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{MaxInstances: -5, LogLevel: "loud"}
	cfg.Normalize()

	assert.Equal(t, 100, cfg.MaxInstances)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "+00:00", cfg.DefaultOffset)
	assert.NotNil(t, cfg.ReportDates)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calexpand.yaml")
	cfg := DefaultConfig()
	cfg.MaxInstances = 42
	cfg.ReportDates = []string{"2025-07-24", "2025-12-25"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
