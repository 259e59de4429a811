package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcus/remind/internal/dateparse"
	"github.com/marcus/remind/internal/input"
	"github.com/marcus/remind/internal/models"
	"github.com/marcus/remind/internal/output"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add [description]",
	Aliases: []string{"new", "a"},
	Short:   "Add a reminder",
	Long: `Add a reminder with a due time.

The due time accepts absolute timestamps ("2026-09-01 14:30"), bare dates
("2026-09-01", due at 09:00), clock times ("14:30", "9am" — today, or
tomorrow if already past), relative offsets ("+30m", "+2h", "+3d", "+1w"),
and keywords ("tomorrow 9am", "friday", "next-week").`,
	GroupID: "core",
	Example: `  remind add "water the plants" --in 2h
  remind add "dentist" --at "2026-09-14 10:30"
  remind add "standup" --at 9:15am --notes @agenda.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")

		description := ""
		if len(args) > 0 {
			description = strings.TrimSpace(args[0])
		}
		if description == "" {
			return reportError(jsonOut, output.ErrCodeInvalidInput, fmt.Errorf("description is required"))
		}

		at, _ := cmd.Flags().GetString("at")
		in, _ := cmd.Flags().GetString("in")
		if (at == "") == (in == "") {
			return reportError(jsonOut, output.ErrCodeInvalidInput, fmt.Errorf("exactly one of --at or --in is required"))
		}

		when := at
		if in != "" {
			// --in 2h is shorthand for --at +2h
			when = "+" + strings.TrimPrefix(in, "+")
		}
		due, err := dateparse.Parse(when)
		if err != nil {
			return reportError(jsonOut, output.ErrCodeInvalidInput, err)
		}

		notes, _ := cmd.Flags().GetString("notes")
		if notes != "" {
			if notes, err = input.ExpandValue(notes); err != nil {
				return reportError(jsonOut, output.ErrCodeIOError, err)
			}
		}

		st, err := openStore(jsonOut)
		if err != nil {
			return err
		}

		r := &models.Reminder{
			Description: description,
			Notes:       notes,
			DueAt:       due,
		}
		if err := st.Add(r); err != nil {
			return reportError(jsonOut, output.ErrCodeInvalidInput, err)
		}
		if err := st.Save(); err != nil {
			return reportError(jsonOut, output.ErrCodeIOError, err)
		}

		if jsonOut {
			return output.JSON(r)
		}
		output.Success("Added %s: %s (%s)", r.ID, r.Description, output.FormatDue(r.DueAt, time.Now()))
		return nil
	},
}

func init() {
	addCmd.Flags().String("at", "", "due time (timestamp, clock time, or keyword)")
	addCmd.Flags().String("in", "", "due after a delay (30m, 2h, 3d, 1w)")
	addCmd.Flags().String("notes", "", "longer notes (markdown; - for stdin, @file to read a file)")
	addCmd.Flags().Bool("json", false, "output the created reminder as JSON")
	rootCmd.AddCommand(addCmd)
}
