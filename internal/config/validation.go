package config

import "fmt"

func validateConfig(cfg *Config) error {
	switch cfg.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q (expected trace, debug, info, warn or error)", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (expected console or json)", cfg.Logging.Format)
	}

	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output.format %q (expected text or json)", cfg.Output.Format)
	}

	if cfg.Monitor.PollIntervalMS <= 0 {
		return fmt.Errorf("monitor.poll_interval_ms must be positive, got %d", cfg.Monitor.PollIntervalMS)
	}
	if cfg.Monitor.TickIntervalMS <= 0 {
		return fmt.Errorf("monitor.tick_interval_ms must be positive, got %d", cfg.Monitor.TickIntervalMS)
	}
	if cfg.Monitor.HandoffCapacity <= 0 {
		return fmt.Errorf("monitor.handoff_capacity must be positive, got %d", cfg.Monitor.HandoffCapacity)
	}
	return nil
}
