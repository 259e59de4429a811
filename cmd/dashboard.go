package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/remind/internal/config"
	"github.com/marcus/remind/internal/output"
	"github.com/marcus/remind/pkg/dashboard"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui", "tui"},
	Short:   "Interactive TUI with live due checking",
	Long: `Launch an interactive dashboard: a live reminder list that runs the
due checker while open.

Key bindings:
  j/k or ↑/↓  Move the cursor
  a           Add a reminder
  d/x         Delete the selected reminder
  n           Show/hide already-notified reminders
  /           Filter by description
  r           Run a due-check pass now
  ?           Toggle help
  q           Quit`,
	GroupID: "watch",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(false)
		if err != nil {
			return err
		}

		cfg, err := config.Load(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		interval := cfg.Interval()
		if f, _ := cmd.Flags().GetDuration("interval"); f >= time.Second {
			interval = f
		}

		model := dashboard.NewModel(st, pickNotifier(cmd), interval)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().Duration("interval", 0, "time between passes (default from config, 30s)")
	dashboardCmd.Flags().Bool("console", false, "print notifications to the terminal instead of the desktop")
	rootCmd.AddCommand(dashboardCmd)
}
