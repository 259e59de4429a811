package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interval() != 30*time.Second {
		t.Fatalf("default interval = %v, want 30s", cfg.Interval())
	}
	if cfg.PruneOnNotify || cfg.DisableDesktop {
		t.Fatal("zero-value config has non-default flags set")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := &Config{
		CheckIntervalSeconds: 5,
		PruneOnNotify:        true,
		DisableDesktop:       true,
	}
	if err := Save(dir, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}
	if got.Interval() != 5*time.Second {
		t.Fatalf("Interval() = %v, want 5s", got.Interval())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted malformed config")
	}
}

func TestIntervalFallback(t *testing.T) {
	for _, secs := range []int{0, -10} {
		cfg := &Config{CheckIntervalSeconds: secs}
		if cfg.Interval() != 30*time.Second {
			t.Fatalf("Interval() with %d = %v, want 30s", secs, cfg.Interval())
		}
	}
}
