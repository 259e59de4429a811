package cmd

import (
	"github.com/marcus/remind/internal/output"
	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:     "prune",
	Short:   "Remove all already-notified reminders",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(false)
		if err != nil {
			return err
		}

		n := st.Prune()
		if n == 0 {
			output.Info("Nothing to prune.")
			return nil
		}
		if err := st.Save(); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("Pruned %d notified reminder(s)", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
