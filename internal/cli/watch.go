package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/uiprefs"
	"github.com/bnema/uiprefs/internal/config"
	"github.com/bnema/uiprefs/monitor"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch preference changes live",
		Long: `watch runs the preference pump and polls it on a fixed tick,
rendering the snapshot as it changes. Press q to quit.`,
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

			model := watchModel{
				watcher: watcher,
				theme:   NewTheme(),
				tick:    cfg.Monitor.TickInterval(),
			}
			program := tea.NewProgram(model, tea.WithContext(ctx))

			// Live config reload: pick up a changed tick interval without
			// restarting the watch.
			cli.Manager.OnConfigChange(func(updated *config.Config) {
				program.Send(configChangedMsg{tick: updated.Monitor.TickInterval()})
			})
			if err := cli.Manager.Watch(); err != nil {
				cli.Log.Warn().Err(err).Msg("config watch unavailable")
			}

			_, err = program.Run()
			return err
		},
	}
}

type tickMsg time.Time

type configChangedMsg struct {
	tick time.Duration
}

// watchModel polls the pump once per tick message; this is the host tick
// loop for the CLI.
type watchModel struct {
	watcher     *uiprefs.Watcher
	theme       *Theme
	tick        time.Duration
	ticks       int
	updates     int
	lastErr     error
	streamEnded bool
}

func (m watchModel) Init() tea.Cmd {
	return tickCmd(m.tick)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case configChangedMsg:
		if msg.tick > 0 {
			m.tick = msg.tick
		}
		return m, nil

	case tickMsg:
		m.ticks++
		before := m.watcher.Current()
		if err := m.watcher.Tick(); err != nil {
			// Per-tick failure: report it and keep going; the pump is a
			// no-op once the stream has ended.
			if errors.Is(err, uiprefs.ErrStreamEnded) {
				m.streamEnded = true
			} else {
				m.lastErr = err
			}
		} else if !m.watcher.Current().Equal(before) {
			m.updates++
		}
		return m, tickCmd(m.tick)
	}
	return m, nil
}

func (m watchModel) View() string {
	view := m.theme.Title.Render("System UI preferences") + "\n\n"
	view += m.theme.RenderSnapshot(m.watcher.Current())
	view += "\n"

	status := fmt.Sprintf("%d ticks, %d updates", m.ticks, m.updates)
	if m.streamEnded {
		status += " · stream ended"
	}
	view += m.theme.Muted.Render(status) + "\n"
	if m.lastErr != nil {
		view += m.theme.Error.Render("last error: "+m.lastErr.Error()) + "\n"
	}
	view += m.theme.Muted.Render("press q to quit") + "\n"
	return view
}
