package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestManager points the manager at an isolated config directory.
func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", configHome)

	m, err := NewManager()
	require.NoError(t, err)
	return m, filepath.Join(configHome, appName)
}

func TestLoadCreatesDefaultConfigFile(t *testing.T) {
	m, configDir := newTestManager(t)

	require.NoError(t, m.Load())

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfigTOML, string(data))

	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestLoadPartialFileInheritsDefaults(t *testing.T) {
	m, configDir := newTestManager(t)

	require.NoError(t, os.MkdirAll(configDir, 0o755))
	partial := "[monitor]\npoll_interval_ms = 500\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(partial), 0o644))

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 500, cfg.Monitor.PollIntervalMS)
	assert.Equal(t, 100, cfg.Monitor.TickIntervalMS)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Preferences.ColorScheme)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	m, _ := newTestManager(t)
	t.Setenv("UIPREFS_MONITOR_POLL_INTERVAL_MS", "750")
	t.Setenv("UIPREFS_LOG_LEVEL", "debug")
	t.Setenv("UIPREFS_OUTPUT_FORMAT", "json")

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 750, cfg.Monitor.PollIntervalMS)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	m, configDir := newTestManager(t)

	require.NoError(t, os.MkdirAll(configDir, 0o755))
	bad := "[logging]\nlevel = \"verbose\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(bad), 0o644))

	err := m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestGetConfigDirHonorsXDGConfigHome(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configHome, appName), dir)
}

func TestGetConfigDirDevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	cwd, err := os.Getwd()
	require.NoError(t, err)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dir)
}
