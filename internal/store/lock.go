package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lockFileName   = "reminders.json.lock"
	defaultTimeout = 500 * time.Millisecond
	initialBackoff = 5 * time.Millisecond
	maxBackoff     = 50 * time.Millisecond
)

// fileLocker manages exclusive access to the store file using OS file locks,
// so a one-shot command and a running watch/dashboard cannot interleave
// overwrites. The lock is released automatically when the process exits.
type fileLocker struct {
	lockPath string
	lockFile *os.File
}

func newFileLocker(dataDir string) *fileLocker {
	return &fileLocker{
		lockPath: filepath.Join(dataDir, lockFileName),
	}
}

// acquire attempts to get the exclusive lock within the given timeout,
// retrying with capped exponential backoff.
func (l *fileLocker) acquire(timeout time.Duration) error {
	f, err := os.OpenFile(l.lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	l.lockFile = f

	deadline := time.Now().Add(timeout)
	backoff := initialBackoff

	for {
		if err := l.tryLock(); err == nil {
			l.writeHolder()
			return nil
		}

		if time.Now().After(deadline) {
			l.lockFile.Close()
			l.lockFile = nil
			return fmt.Errorf("store lock timeout after %v: another remind process is writing", timeout)
		}

		time.Sleep(backoff)
		if backoff < maxBackoff {
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}
}

// release releases the lock.
func (l *fileLocker) release() {
	if l.lockFile == nil {
		return
	}

	l.lockFile.Truncate(0)
	l.unlock()
	l.lockFile.Close()
	l.lockFile = nil
}

// writeHolder records current process info in the lock file for debugging.
func (l *fileLocker) writeHolder() {
	if l.lockFile == nil {
		return
	}
	l.lockFile.Truncate(0)
	l.lockFile.Seek(0, 0)
	fmt.Fprintf(l.lockFile, "pid:%d\ntime:%s\n", os.Getpid(), time.Now().Format(time.RFC3339))
	l.lockFile.Sync()
}

// tryLock and unlock are implemented in platform-specific files:
// - lock_unix.go for Unix systems (flock)
// - lock_windows.go for Windows (LockFileEx)
