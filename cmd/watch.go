package cmd

import (
	"log"
	"os/signal"
	"syscall"

	"github.com/marcus/remind/internal/checker"
	"github.com/marcus/remind/internal/config"
	"github.com/marcus/remind/internal/notify"
	"github.com/marcus/remind/internal/output"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Watch the store and notify as reminders come due",
	Long: `Run the due checker in the foreground. A pass runs immediately on
startup (catching anything that came due while no watcher was running),
then every interval. Stop with Ctrl-C.`,
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
		if f, _ := cmd.Flags().GetDuration("interval"); f > 0 {
			interval = f
		}

		c := checker.New(st, pickNotifier(cmd))
		c.PruneOnNotify = cfg.PruneOnNotify
		if prune, _ := cmd.Flags().GetBool("prune"); prune {
			c.PruneOnNotify = true
		}

		runner := checker.NewRunner(c, interval)
		runner.OnPass = func(fired int, err error) {
			if fired > 0 && err == nil {
				log.Printf("fired %d reminder(s)", fired)
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		output.Info("Watching %s every %s. Ctrl-C to stop.", st.Path(), interval)
		if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

// pickNotifier selects desktop or console delivery based on the --console
// flag and the stored config.
func pickNotifier(cmd *cobra.Command) notify.Notifier {
	console, _ := cmd.Flags().GetBool("console")
	cfg, err := config.Load(getDataDir())
	if err != nil {
		cfg = &config.Config{}
	}
	if console || cfg.DisableDesktop {
		return notify.NewConsole()
	}
	return &notify.Desktop{Icon: cfg.NotificationIcon}
}

func init() {
	watchCmd.Flags().Duration("interval", 0, "time between passes (default from config, 30s)")
	watchCmd.Flags().Bool("console", false, "print notifications to the terminal instead of the desktop")
	watchCmd.Flags().Bool("prune", false, "remove reminders once they fire")
	rootCmd.AddCommand(watchCmd)
}
