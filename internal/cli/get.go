package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/uiprefs"
	"github.com/bnema/uiprefs/monitor"
)

// seedSettleTime is how long get ticks the pump before printing; sources
// emit the current state as their first bundle, so this only needs to
// cover source construction and one channel hop.
const seedSettleTime = 500 * time.Millisecond

func newGetCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current preference snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			cfg := cli.Config
			source := monitor.New(monitor.Options{
				PollInterval: cfg.Monitor.PollInterval(),
				Logger:       cli.Log,
			})
			watcher := uiprefs.New(source,
				uiprefs.WithInterest(cfg.Preferences.Interest()),
				uiprefs.WithHandoffCapacity(cfg.Monitor.HandoffCapacity),
				uiprefs.WithLogger(cli.Log),
			)
			if err := watcher.Start(ctx); err != nil {
				return err
			}

			// Drain the seed bundle through the regular poll step.
			deadline := time.Now().Add(seedSettleTime)
			for time.Now().Before(deadline) {
				if err := watcher.Tick(); err != nil {
					if errors.Is(err, uiprefs.ErrStreamEnded) {
						break
					}
					return err
				}
				time.Sleep(10 * time.Millisecond)
			}

			snapshot := watcher.Current()
			if jsonOutput || cfg.Output.Format == "json" {
				data, err := json.MarshalIndent(snapshot, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode snapshot: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Print(NewTheme().RenderSnapshot(snapshot))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the snapshot as JSON")
	return cmd
}
