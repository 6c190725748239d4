package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// TOML config file named config.toml in the XDG config dir.
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Environment variable support: UIPREFS_MONITOR_POLL_INTERVAL_MS etc.
	v.SetEnvPrefix("UIPREFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short-form logging variables shared with the library consumers.
	if err := v.BindEnv("logging.level", "UIPREFS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind UIPREFS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "UIPREFS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind UIPREFS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", m.viper.ConfigFileUsed(), err)
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				configDir, _ := GetConfigDir()
				return fmt.Errorf(
					"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
					configDir,
					createErr,
				)
			}
			if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
				return fmt.Errorf(
					"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
					rereadErr,
				)
			}
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func (m *Manager) createDefaultConfig() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.toml")
	return os.WriteFile(path, []byte(defaultConfigTOML), 0o644)
}

// setDefaults mirrors DefaultConfig so a partial file inherits defaults.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("preferences.color_scheme", defaults.Preferences.ColorScheme)
	m.viper.SetDefault("preferences.contrast", defaults.Preferences.Contrast)
	m.viper.SetDefault("preferences.reduced_motion", defaults.Preferences.ReducedMotion)
	m.viper.SetDefault("preferences.reduced_transparency", defaults.Preferences.ReducedTransparency)
	m.viper.SetDefault("preferences.accent_color", defaults.Preferences.AccentColor)
	m.viper.SetDefault("preferences.double_click_interval", defaults.Preferences.DoubleClickInterval)

	m.viper.SetDefault("monitor.poll_interval_ms", defaults.Monitor.PollIntervalMS)
	m.viper.SetDefault("monitor.tick_interval_ms", defaults.Monitor.TickIntervalMS)
	m.viper.SetDefault("monitor.handoff_capacity", defaults.Monitor.HandoffCapacity)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("output.format", defaults.Output.Format)
}

// Get returns the loaded configuration. Load must have been called.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}
