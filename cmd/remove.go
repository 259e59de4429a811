package cmd

import (
	"errors"

	"github.com/marcus/remind/internal/output"
	"github.com/marcus/remind/internal/store"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>...",
	Aliases: []string{"rm", "delete", "done"},
	Short:   "Remove one or more reminders",
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(false)
		if err != nil {
			return err
		}

		var firstErr error
		removed := 0
		for _, id := range args {
			if err := st.Remove(id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					output.Warning("%v", err)
				} else {
					output.Error("%v", err)
				}
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			removed++
		}

		if removed > 0 {
			if err := st.Save(); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("Removed %d reminder(s)", removed)
		}
		return firstErr
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
