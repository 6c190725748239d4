// Package config loads the uiprefs CLI configuration from the XDG config
// directory and UIPREFS_-prefixed environment variables.
package config

import (
	"time"

	"github.com/bnema/uiprefs"
)

// Config represents the complete configuration for the uiprefs CLI.
type Config struct {
	// Preferences toggles which preference categories are watched.
	Preferences PreferencesConfig `mapstructure:"preferences" toml:"preferences" json:"preferences"`
	// Monitor tunes the platform source and the hand-off channel.
	Monitor MonitorConfig `mapstructure:"monitor" toml:"monitor" json:"monitor"`
	// Logging controls log level and format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Output controls how snapshots are printed.
	Output OutputConfig `mapstructure:"output" toml:"output" json:"output"`
}

// PreferencesConfig is the documented set of preference categories, each
// independently enabled or disabled. Disabled categories always read as
// "no preference".
type PreferencesConfig struct {
	ColorScheme         bool `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme"`
	Contrast            bool `mapstructure:"contrast" toml:"contrast" json:"contrast"`
	ReducedMotion       bool `mapstructure:"reduced_motion" toml:"reduced_motion" json:"reduced_motion"`
	ReducedTransparency bool `mapstructure:"reduced_transparency" toml:"reduced_transparency" json:"reduced_transparency"`
	AccentColor         bool `mapstructure:"accent_color" toml:"accent_color" json:"accent_color"`
	DoubleClickInterval bool `mapstructure:"double_click_interval" toml:"double_click_interval" json:"double_click_interval"`
}

// Interest converts the toggles into a subscription interest set.
func (p PreferencesConfig) Interest() uiprefs.Interest {
	var interest uiprefs.Interest
	if p.ColorScheme {
		interest |= uiprefs.InterestColorScheme
	}
	if p.Contrast {
		interest |= uiprefs.InterestContrast
	}
	if p.ReducedMotion {
		interest |= uiprefs.InterestReducedMotion
	}
	if p.ReducedTransparency {
		interest |= uiprefs.InterestReducedTransparency
	}
	if p.AccentColor {
		interest |= uiprefs.InterestAccentColor
	}
	if p.DoubleClickInterval {
		interest |= uiprefs.InterestDoubleClickInterval
	}
	return interest
}

// MonitorConfig tunes source and pump behavior.
type MonitorConfig struct {
	// PollIntervalMS is the platform probe interval for polling sources.
	PollIntervalMS int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms"`
	// TickIntervalMS is how often the watch command runs the poll step.
	TickIntervalMS int `mapstructure:"tick_interval_ms" toml:"tick_interval_ms" json:"tick_interval_ms"`
	// HandoffCapacity is the hand-off channel capacity.
	HandoffCapacity int `mapstructure:"handoff_capacity" toml:"handoff_capacity" json:"handoff_capacity"`
}

// PollInterval returns the probe interval as a duration.
func (m MonitorConfig) PollInterval() time.Duration {
	return time.Duration(m.PollIntervalMS) * time.Millisecond
}

// TickInterval returns the poll step interval as a duration.
func (m MonitorConfig) TickInterval() time.Duration {
	return time.Duration(m.TickIntervalMS) * time.Millisecond
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// OutputConfig controls snapshot printing.
type OutputConfig struct {
	// Format is "text" (styled) or "json".
	Format string `mapstructure:"format" toml:"format" json:"format"`
}
