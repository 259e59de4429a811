package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/remind/internal/output"
	"github.com/marcus/remind/internal/store"
	"github.com/spf13/cobra"
)

const dataDirEnv = "REMIND_DATA_DIR"

var (
	version     string
	dataDirFlag string
	dataDir     string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "remind",
	Short: "Local reminder CLI with desktop notifications",
	Long: `remind - A minimalist local reminder CLI.

Record things to do with a due time, then let the watcher fire a desktop
notification when each one comes due. Everything lives in a single JSON
file; no accounts, no daemons you don't start yourself.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nameWithAliases returns "name, alias1, alias2" if aliases exist, else just "name"
func nameWithAliases(cmd *cobra.Command) string {
	if len(cmd.Aliases) > 0 {
		return cmd.Name() + ", " + strings.Join(cmd.Aliases, ", ")
	}
	return cmd.Name()
}

func init() {
	cobra.OnInitialize(initDataDir)

	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "",
		"directory holding reminders.json (default $"+dataDirEnv+" or ~/.remind)")

	// Show aliases inline in help output
	cobra.AddTemplateFunc("nameWithAliases", nameWithAliases)
	cobra.AddTemplateFunc("add", func(a, b int) int { return a + b })

	usageTemplate := `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad (nameWithAliases .) (add .NamePadding 8)}} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad (nameWithAliases .) (add .NamePadding 8)}} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Additional Commands:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad (nameWithAliases .) (add .NamePadding 8)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "watch", Title: "Watcher Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

// initDataDir resolves the data directory: --data-dir flag, then
// REMIND_DATA_DIR, then ~/.remind.
func initDataDir() {
	if dataDirFlag != "" {
		dataDir = dataDirFlag
		return
	}
	if env := os.Getenv(dataDirEnv); env != "" {
		dataDir = env
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}
	dataDir = filepath.Join(home, ".remind")
}

// getDataDir returns the resolved data directory
func getDataDir() string {
	return dataDir
}

// openStore opens the reminder store, reporting failures on the human or
// JSON surface depending on the command's --json flag.
func openStore(jsonOut bool) (*store.Store, error) {
	st, err := store.Open(getDataDir())
	if err != nil {
		return nil, reportError(jsonOut, storeErrCode(err), err)
	}
	return st, nil
}

// reportError prints err for humans or, in JSON mode, as a structured error
// object with a stable code. Returns err for direct use in RunE returns.
func reportError(jsonOut bool, code string, err error) error {
	if jsonOut {
		output.JSONError(code, err.Error())
		return err
	}
	output.Error("%v", err)
	if code == output.ErrCodeCorruptStore {
		output.Info("The file was left untouched. Fix or move it aside to start fresh.")
	}
	return err
}

// storeErrCode maps a store error to its JSON error code.
func storeErrCode(err error) string {
	var corrupt *store.CorruptError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return output.ErrCodeNotFound
	case errors.As(err, &corrupt):
		return output.ErrCodeCorruptStore
	default:
		return output.ErrCodeIOError
	}
}

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show version information",
	GroupID: "system",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("remind version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
