package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcus/remind/internal/config"
	"github.com/marcus/remind/internal/output"
	"github.com/spf13/cobra"
)

// validConfigKeys lists the supported config keys for set/get.
var validConfigKeys = []string{
	"check.interval",
	"check.prune_on_notify",
	"notify.disable_desktop",
	"notify.icon",
}

func parseBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q (use true/false/1/0)", val)
	}
}

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage remind configuration",
	GroupID: "system",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show config values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		values := map[string]string{
			"check.interval":         cfg.Interval().String(),
			"check.prune_on_notify":  strconv.FormatBool(cfg.PruneOnNotify),
			"notify.disable_desktop": strconv.FormatBool(cfg.DisableDesktop),
			"notify.icon":            cfg.NotificationIcon,
		}

		if len(args) == 1 {
			v, ok := values[args[0]]
			if !ok {
				output.Error("unknown config key: %s", args[0])
				return fmt.Errorf("unknown config key: %s", args[0])
			}
			fmt.Println(v)
			return nil
		}
		for _, k := range validConfigKeys {
			fmt.Printf("%s = %s\n", k, values[k])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		cfg, err := config.Load(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		switch key {
		case "check.interval":
			secs, err := strconv.Atoi(val)
			if err != nil || secs <= 0 {
				output.Error("check.interval wants a positive number of seconds")
				return fmt.Errorf("invalid interval: %s", val)
			}
			cfg.CheckIntervalSeconds = secs
		case "check.prune_on_notify":
			b, err := parseBool(val)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			cfg.PruneOnNotify = b
		case "notify.disable_desktop":
			b, err := parseBool(val)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			cfg.DisableDesktop = b
		case "notify.icon":
			cfg.NotificationIcon = val
		default:
			output.Error("unknown config key: %s", key)
			fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := config.Save(getDataDir(), cfg); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("%s = %s", key, val)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
