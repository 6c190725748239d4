package config

// DefaultConfig returns the configuration used when no file or
// environment overrides are present: every preference category enabled,
// a 2s platform probe, a 100ms poll step for the watch command.
func DefaultConfig() *Config {
	return &Config{
		Preferences: PreferencesConfig{
			ColorScheme:         true,
			Contrast:            true,
			ReducedMotion:       true,
			ReducedTransparency: true,
			AccentColor:         true,
			DoubleClickInterval: true,
		},
		Monitor: MonitorConfig{
			PollIntervalMS:  2000,
			TickIntervalMS:  100,
			HandoffCapacity: 64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// defaultConfigTOML is written to disk the first time the CLI runs
// without a config file.
const defaultConfigTOML = `# uiprefs configuration

[preferences]
# Each category can be disabled independently; disabled categories
# always read as "no preference".
color_scheme = true
contrast = true
reduced_motion = true
reduced_transparency = true
accent_color = true
double_click_interval = true

[monitor]
# Probe interval for platforms without change notification (ms).
poll_interval_ms = 2000
# Poll step interval for the watch command (ms).
tick_interval_ms = 100
# Hand-off channel capacity between the forwarder and the poll step.
handoff_capacity = 64

[logging]
# trace, debug, info, warn, error
level = "info"
# console or json
format = "console"

[output]
# text or json
format = "text"
`
