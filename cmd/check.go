package cmd

import (
	"time"

	"github.com/marcus/remind/internal/checker"
	"github.com/marcus/remind/internal/output"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Run one due-check pass and exit",
	Long: `Run a single due-check pass: notify for every pending reminder whose
due time has arrived, mark it notified, and exit. Useful from cron or a
systemd timer instead of the long-running watch command.`,
	GroupID: "watch",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(false)
		if err != nil {
			return err
		}

		c := checker.New(st, pickNotifier(cmd))
		prune, _ := cmd.Flags().GetBool("prune")
		c.PruneOnNotify = prune

		fired, err := c.Pass(time.Now())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if len(fired) == 0 {
			output.Info("Nothing due.")
			return nil
		}
		output.Success("Fired %d reminder(s)", len(fired))
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("console", false, "print notifications to the terminal instead of the desktop")
	checkCmd.Flags().Bool("prune", false, "remove reminders once they fire")
	rootCmd.AddCommand(checkCmd)
}
