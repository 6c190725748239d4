package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/uiprefs/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the uiprefs configuration",
	}
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config directory path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			cmd.Println(dir)
			return nil
		},
	}
}
