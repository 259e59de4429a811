// Package store implements the JSON-file-backed reminder store. The file is
// the sole durable copy and is fully overwritten on every save; the in-memory
// sequence is owned exclusively by the Store.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/marcus/remind/internal/models"
)

const storeFile = "reminders.json"

// Store holds the in-memory reminder sequence and its backing file location.
// The slice order is insertion order, which is also due-checker scan order.
type Store struct {
	dataDir   string
	reminders []models.Reminder
}

// Open loads the store from dataDir, creating the directory if needed.
// A missing store file yields an empty store; a malformed one fails with
// *CorruptError and the file is left untouched.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{dataDir: dataDir}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the backing JSON file.
func (s *Store) Path() string {
	return filepath.Join(s.dataDir, storeFile)
}

// Load replaces the in-memory sequence with the contents of the store file.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			s.reminders = nil
			return nil
		}
		return fmt.Errorf("read store: %w", err)
	}

	// A zero-length file counts as an empty store, not corruption.
	if len(strings.TrimSpace(string(data))) == 0 {
		s.reminders = nil
		return nil
	}

	var reminders []models.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		return &CorruptError{Path: s.Path(), Err: err}
	}

	s.reminders = reminders
	return nil
}

// Save serializes the full sequence to the store file, overwriting it.
// The write is atomic (temp file + rename) and guarded by a cross-process
// file lock. On failure the in-memory state is unchanged and the caller can
// retry.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.reminders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if s.reminders == nil {
		data = []byte("[]")
	}

	locker := newFileLocker(s.dataDir)
	if err := locker.acquire(defaultTimeout); err != nil {
		return err
	}
	defer locker.release()

	tmp, err := os.CreateTemp(s.dataDir, "reminders-*.json.tmp")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// Add appends a new reminder to the in-memory sequence, assigning an ID and
// creation time and forcing notified=false. The caller persists with Save.
func (s *Store) Add(r *models.Reminder) error {
	if err := r.Validate(); err != nil {
		return err
	}

	id, err := generateID()
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}
	r.ID = id
	r.Description = strings.TrimSpace(r.Description)
	r.Notified = false
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	s.reminders = append(s.reminders, *r)
	return nil
}

// Get returns a copy of the reminder with the given id, or ErrNotFound.
func (s *Store) Get(id string) (*models.Reminder, error) {
	id = NormalizeID(id)
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			r := s.reminders[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Remove deletes the reminder with the given id, preserving the order of the
// remaining records. Unknown ids fail with ErrNotFound and leave the store
// unchanged.
func (s *Store) Remove(id string) error {
	id = NormalizeID(id)
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", id, ErrNotFound)
}

// MarkNotified sets the notified flag on a reminder. The flag is monotonic:
// there is no operation that clears it.
func (s *Store) MarkNotified(id string) error {
	id = NormalizeID(id)
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Notified = true
			return nil
		}
	}
	return fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Prune drops all notified reminders and returns how many were removed.
func (s *Store) Prune() int {
	kept := s.reminders[:0]
	removed := 0
	for _, r := range s.reminders {
		if r.Notified {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.reminders = kept
	return removed
}

// Len returns the number of reminders in the store.
func (s *Store) Len() int {
	return len(s.reminders)
}

// All returns a copy of the full sequence in insertion order.
func (s *Store) All() []models.Reminder {
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// ListOptions controls filtering and ordering for List.
type ListOptions struct {
	IncludeNotified bool // include reminders that have already fired
	OnlyNotified    bool // show only reminders that have already fired
	SortByDue       bool // order by due time instead of insertion order
}

// List returns a filtered copy of the sequence.
func (s *Store) List(opts ListOptions) []models.Reminder {
	var out []models.Reminder
	for _, r := range s.reminders {
		if opts.OnlyNotified && !r.Notified {
			continue
		}
		if !opts.OnlyNotified && !opts.IncludeNotified && r.Notified {
			continue
		}
		out = append(out, r)
	}

	if opts.SortByDue {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DueAt.Before(out[j].DueAt)
		})
	}
	return out
}
