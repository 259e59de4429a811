package cmd

import (
	"fmt"
	"time"

	"github.com/marcus/remind/internal/models"
	"github.com/marcus/remind/internal/output"
	"github.com/marcus/remind/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List pending reminders",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")

		st, err := openStore(jsonOut)
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		notified, _ := cmd.Flags().GetBool("notified")
		reminders := st.List(store.ListOptions{
			IncludeNotified: all,
			OnlyNotified:    notified,
			SortByDue:       true,
		})

		if jsonOut {
			if reminders == nil {
				reminders = []models.Reminder{}
			}
			return output.JSON(reminders)
		}

		if len(reminders) == 0 {
			output.Info("No reminders. Add one with: remind add \"...\" --in 2h")
			return nil
		}

		now := time.Now()
		long, _ := cmd.Flags().GetBool("long")
		for i := range reminders {
			r := &reminders[i]
			if long {
				fmt.Println(output.FormatReminderLong(r, now))
			} else {
				fmt.Println(output.FormatReminderShort(r, now))
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("all", false, "include already-notified reminders")
	listCmd.Flags().Bool("notified", false, "show only already-notified reminders")
	listCmd.Flags().Bool("long", false, "full detail per reminder")
	listCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}
