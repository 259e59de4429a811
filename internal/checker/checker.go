// Package checker implements the periodic due-check pass: scan the store in
// insertion order, notify for every pending reminder whose due time has
// arrived, mark it notified, and persist once at the end of the pass.
package checker

import (
	"log"
	"time"

	"github.com/marcus/remind/internal/models"
	"github.com/marcus/remind/internal/notify"
	"github.com/marcus/remind/internal/store"
)

// Checker runs due-check passes against a store.
type Checker struct {
	store    *store.Store
	notifier notify.Notifier

	// PruneOnNotify drops reminders from the store once they have fired,
	// instead of keeping them flagged as notified.
	PruneOnNotify bool

	// Logf receives diagnostic messages for notification failures.
	// Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// New returns a Checker delivering through the given notifier.
func New(st *store.Store, n notify.Notifier) *Checker {
	return &Checker{
		store:    st,
		notifier: n,
		Logf:     log.Printf,
	}
}

// Pass runs one due-check pass at the given wall-clock time and returns the
// reminders that fired, in store order.
//
// Simultaneous due times fire independent notifications in insertion order.
// Notification failure is logged and does not block marking: a reminder
// fires once, best effort, whenever first observed at or after its due time.
// The store is saved exactly once after the pass, and only if something
// fired.
func (c *Checker) Pass(now time.Time) ([]models.Reminder, error) {
	var fired []models.Reminder

	for _, r := range c.store.All() {
		if !r.IsDue(now) {
			continue
		}

		if err := c.notifier.Notify(notify.Title, r.Description); err != nil {
			c.Logf("notification for %s failed: %v", r.ID, err)
		}

		if err := c.store.MarkNotified(r.ID); err != nil {
			// Record vanished mid-pass; nothing to mark.
			c.Logf("mark %s notified: %v", r.ID, err)
			continue
		}
		fired = append(fired, r)
	}

	if len(fired) == 0 {
		return nil, nil
	}

	if c.PruneOnNotify {
		c.store.Prune()
	}

	if err := c.store.Save(); err != nil {
		return fired, err
	}
	return fired, nil
}
