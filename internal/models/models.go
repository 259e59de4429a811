package models

import (
	"fmt"
	"strings"
	"time"
)

// Reminder represents a single reminder record. The on-disk store is a JSON
// array of these objects; the array order is insertion order and is the order
// the due checker scans in.
type Reminder struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	DueAt       time.Time `json:"due_at"`
	Notified    bool      `json:"notified"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsDue reports whether the reminder's due time has arrived. A notified
// reminder is never due again: Notified is monotonic once set.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.Notified && !r.DueAt.After(now)
}

// Overdue reports how long past due the reminder is at the given time.
// Returns zero for reminders that are not yet due.
func (r *Reminder) Overdue(now time.Time) time.Duration {
	if r.DueAt.After(now) {
		return 0
	}
	return now.Sub(r.DueAt)
}

// Validate checks the invariants a reminder must hold before it enters the
// store: non-empty description and a set due time.
func (r *Reminder) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if r.DueAt.IsZero() {
		return fmt.Errorf("due time is required")
	}
	return nil
}
