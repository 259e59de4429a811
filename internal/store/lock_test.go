package store

import (
	"strings"
	"testing"
	"time"
)

// TestLockExclusion tests that a held lock blocks a second acquirer
func TestLockExclusion(t *testing.T) {
	dir := t.TempDir()

	first := newFileLocker(dir)
	if err := first.acquire(defaultTimeout); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	defer first.release()

	second := newFileLocker(dir)
	err := second.acquire(20 * time.Millisecond)
	if err == nil {
		second.release()
		t.Fatal("second acquire should time out while lock is held")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestLockReleaseAllowsReacquire tests that release hands the lock off
func TestLockReleaseAllowsReacquire(t *testing.T) {
	dir := t.TempDir()

	first := newFileLocker(dir)
	if err := first.acquire(defaultTimeout); err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	first.release()

	second := newFileLocker(dir)
	if err := second.acquire(defaultTimeout); err != nil {
		t.Fatalf("reacquire after release failed: %v", err)
	}
	second.release()
}
