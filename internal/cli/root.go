// Package cli provides the command-line interface for uiprefs.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/uiprefs/internal/config"
	"github.com/bnema/uiprefs/internal/logging"
)

// CLI holds the loaded configuration and logger for the CLI commands.
type CLI struct {
	Config  *config.Config
	Log     zerolog.Logger
	Manager *config.Manager
}

// NewCLI loads configuration and builds the logger.
func NewCLI() (*CLI, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := manager.Get()
	return &CLI{
		Config:  cfg,
		Log:     logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format),
		Manager: manager,
	}, nil
}

// NewRootCmd creates the root command for uiprefs.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uiprefs",
		Short: "Inspect system UI and accessibility preferences",
		Long: `uiprefs reads the system-level UI and accessibility preferences
(color scheme, contrast, reduced motion, reduced transparency, accent
color, double-click interval) and keeps a live snapshot of them.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}
