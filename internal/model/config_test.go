package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Display.VisibleDays)
	assert.Equal(t, 10, cfg.Display.CellWidth)
	assert.Equal(t, 0, cfg.Tracker.StartMonth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoadConfig_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  path: /tmp/progress.db
display:
  visible_days: 14
tracker:
  start_month: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/progress.db", cfg.Storage.Path)
	assert.Equal(t, 14, cfg.Display.VisibleDays)
	assert.Equal(t, 10, cfg.Display.CellWidth)
	assert.Equal(t, 2, cfg.Tracker.StartMonth)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ROUTINE_STORAGE_PATH", ":memory:")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Storage.Path)
}

func TestLoadConfig_InvalidStartMonth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracker:\n  start_month: 13\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display: [unclosed\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
