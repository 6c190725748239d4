package config

import (
	"os"
	"path/filepath"
)

const appName = "uiprefs"

// GetConfigDir returns the XDG config directory for uiprefs:
// $XDG_CONFIG_HOME/uiprefs (default: ~/.config/uiprefs).
func GetConfigDir() (string, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// EnsureDirectories creates the config directory if it doesn't exist.
func EnsureDirectories() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(configDir, 0o755)
}
