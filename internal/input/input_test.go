package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandValueLiteral(t *testing.T) {
	got, err := ExpandValue("plain text")
	if err != nil {
		t.Fatalf("ExpandValue: %v", err)
	}
	if got != "plain text" {
		t.Errorf("got %q, want the literal value", got)
	}
}

func TestExpandValueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# Notes\n\nbody\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ExpandValue("@" + path)
	if err != nil {
		t.Fatalf("ExpandValue: %v", err)
	}
	if got != "# Notes\n\nbody" {
		t.Errorf("got %q, want file contents without trailing newline", got)
	}
}

func TestExpandValueMissingFile(t *testing.T) {
	if _, err := ExpandValue("@" + filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Fatal("ExpandValue accepted a missing file")
	}
}
