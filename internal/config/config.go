// Package config persists watcher settings alongside the reminder store.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/marcus/remind/internal/checker"
)

const configFile = "config.json"

// Config holds per-data-dir settings for the watch loop.
type Config struct {
	// CheckIntervalSeconds is the pause between due-check passes.
	CheckIntervalSeconds int `json:"check_interval_seconds,omitempty"`

	// PruneOnNotify removes reminders from the store once they fire.
	PruneOnNotify bool `json:"prune_on_notify,omitempty"`

	// DisableDesktop routes notifications to the console instead of the
	// desktop daemon.
	DisableDesktop bool `json:"disable_desktop,omitempty"`

	// NotificationIcon is an optional icon path for desktop notifications.
	NotificationIcon string `json:"notification_icon,omitempty"`
}

// Interval returns the configured check interval, falling back to the
// default when unset or nonsense.
func (c *Config) Interval() time.Duration {
	if c.CheckIntervalSeconds <= 0 {
		return checker.DefaultInterval
	}
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

// Load reads the config from the data directory. A missing file yields
// zero-value defaults.
func Load(dataDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config atomically (temp file + rename).
func Save(dataDir string, cfg *Config) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dataDir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(dataDir, configFile))
}
