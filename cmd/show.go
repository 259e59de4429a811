package cmd

import (
	"fmt"
	"time"

	"github.com/marcus/remind/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"view"},
	Short:   "Show one reminder in full, rendering its notes as markdown",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")

		st, err := openStore(jsonOut)
		if err != nil {
			return err
		}

		r, err := st.Get(args[0])
		if err != nil {
			return reportError(jsonOut, storeErrCode(err), err)
		}

		if jsonOut {
			return output.JSON(r)
		}

		fmt.Print(output.FormatReminderLong(r, time.Now()))
		if r.Notes != "" {
			rendered, err := output.RenderMarkdown(r.Notes, 0)
			if err != nil {
				// Fall back to raw notes if the renderer chokes.
				rendered = r.Notes
			}
			fmt.Println()
			fmt.Println(rendered)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}
