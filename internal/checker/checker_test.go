package checker

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/remind/internal/models"
	"github.com/marcus/remind/internal/store"
)

var testNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

// recordingNotifier captures every notification; it can also snapshot the
// on-disk store at notification time and fail on demand.
type recordingNotifier struct {
	bodies []string
	fail   bool

	snapshotPath string
	snapshots    [][]byte
}

func (n *recordingNotifier) Notify(title, body string) error {
	n.bodies = append(n.bodies, body)
	if n.snapshotPath != "" {
		data, _ := os.ReadFile(n.snapshotPath)
		n.snapshots = append(n.snapshots, data)
	}
	if n.fail {
		return errors.New("notification daemon unavailable")
	}
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return st
}

func addReminder(t *testing.T, st *store.Store, desc string, due time.Time) string {
	t.Helper()
	r := &models.Reminder{Description: desc, DueAt: due}
	if err := st.Add(r); err != nil {
		t.Fatalf("Add %q: %v", desc, err)
	}
	return r.ID
}

func quietChecker(st *store.Store, n *recordingNotifier) *Checker {
	c := New(st, n)
	c.Logf = func(string, ...any) {}
	return c
}

func TestPassFiresDueReminders(t *testing.T) {
	st := newTestStore(t)
	addReminder(t, st, "water plants", testNow.Add(-time.Minute))
	addReminder(t, st, "call dentist", testNow.Add(time.Hour))
	if err := st.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	n := &recordingNotifier{}
	fired, err := quietChecker(st, n).Pass(testNow)
	if err != nil {
		t.Fatalf("Pass: %v", err)
	}
	if len(fired) != 1 || fired[0].Description != "water plants" {
		t.Fatalf("fired = %v, want just the overdue reminder", fired)
	}
	if len(n.bodies) != 1 || n.bodies[0] != "water plants" {
		t.Fatalf("notified %v, want [water plants]", n.bodies)
	}
}

func TestPassFiresOncePerReminder(t *testing.T) {
	st := newTestStore(t)
	addReminder(t, st, "standup", testNow.Add(-time.Minute))
	if err := st.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	n := &recordingNotifier{}
	c := quietChecker(st, n)
	for i := 0; i < 3; i++ {
		if _, err := c.Pass(testNow.Add(time.Duration(i) * time.Minute)); err != nil {
			t.Fatalf("Pass %d: %v", i, err)
		}
	}
	if len(n.bodies) != 1 {
		t.Fatalf("notified %d times, want exactly once", len(n.bodies))
	}
}

func TestPassInsertionOrderOnTies(t *testing.T) {
	st := newTestStore(t)
	due := testNow.Add(-time.Minute)
	addReminder(t, st, "first", due)
	addReminder(t, st, "second", due)
	addReminder(t, st, "third", due)

	n := &recordingNotifier{}
	if _, err := quietChecker(st, n).Pass(testNow); err != nil {
		t.Fatalf("Pass: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(n.bodies) != len(want) {
		t.Fatalf("notified %v, want %v", n.bodies, want)
	}
	for i, b := range n.bodies {
		if b != want[i] {
			t.Fatalf("notification %d = %q, want %q", i, b, want[i])
		}
	}
}

// The store must not be written until after the whole pass, and then once.
func TestPassSavesOnceAfterPass(t *testing.T) {
	st := newTestStore(t)
	addReminder(t, st, "one", testNow.Add(-2*time.Minute))
	addReminder(t, st, "two", testNow.Add(-time.Minute))
	if err := st.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	n := &recordingNotifier{snapshotPath: st.Path()}
	if _, err := quietChecker(st, n).Pass(testNow); err != nil {
		t.Fatalf("Pass: %v", err)
	}

	// Each mid-pass snapshot of the file must still show both reminders
	// unnotified: no intermediate saves.
	for i, snap := range n.snapshots {
		var rs []models.Reminder
		if err := json.Unmarshal(snap, &rs); err != nil {
			t.Fatalf("snapshot %d: %v", i, err)
		}
		for _, r := range rs {
			if r.Notified {
				t.Fatalf("snapshot %d: %s already persisted as notified", i, r.ID)
			}
		}
	}

	// After the pass the marks are durable.
	reloaded, err := store.Open(filepath.Dir(st.Path()))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	for _, r := range reloaded.All() {
		if !r.Notified {
			t.Fatalf("%s not persisted as notified after pass", r.ID)
		}
	}
}

func TestPassNoFireNoSave(t *testing.T) {
	st := newTestStore(t)
	addReminder(t, st, "later", testNow.Add(time.Hour))

	// Nothing fires, nothing is saved: the in-memory reminder never
	// reaches disk.
	n := &recordingNotifier{}
	fired, err := quietChecker(st, n).Pass(testNow)
	if err != nil {
		t.Fatalf("Pass: %v", err)
	}
	if fired != nil {
		t.Fatalf("fired = %v, want nil", fired)
	}
	if _, err := os.Stat(st.Path()); !os.IsNotExist(err) {
		t.Fatalf("store file written during a pass with no fires")
	}
}

func TestPassMarksDespiteNotifyFailure(t *testing.T) {
	st := newTestStore(t)
	id := addReminder(t, st, "backup laptop", testNow.Add(-time.Minute))

	n := &recordingNotifier{fail: true}
	fired, err := quietChecker(st, n).Pass(testNow)
	if err != nil {
		t.Fatalf("Pass: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("fired = %v, want one reminder", fired)
	}
	r, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !r.Notified {
		t.Fatal("reminder not marked notified after delivery failure")
	}
}

func TestPassPruneOnNotify(t *testing.T) {
	st := newTestStore(t)
	addReminder(t, st, "ephemeral", testNow.Add(-time.Minute))
	addReminder(t, st, "keep", testNow.Add(time.Hour))

	c := quietChecker(st, &recordingNotifier{})
	c.PruneOnNotify = true
	if _, err := c.Pass(testNow); err != nil {
		t.Fatalf("Pass: %v", err)
	}
	if st.Len() != 1 {
		t.Fatalf("store has %d reminders after prune, want 1", st.Len())
	}
	if st.All()[0].Description != "keep" {
		t.Fatalf("wrong reminder pruned: %v", st.All())
	}
}

func TestRunnerImmediatePass(t *testing.T) {
	st := newTestStore(t)
	addReminder(t, st, "missed while offline", testNow.Add(-24*time.Hour))

	n := &recordingNotifier{}
	r := NewRunner(quietChecker(st, n), time.Hour)

	done := make(chan struct{})
	r.OnPass = func(fired int, err error) { close(done) }

	ctx, cancel := context.WithCancel(context.Background())
	go r.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("no pass ran on startup")
	}
	cancel()

	if len(n.bodies) != 1 {
		t.Fatalf("notified %v, want the stale reminder on first pass", n.bodies)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	st := newTestStore(t)
	r := NewRunner(quietChecker(st, &recordingNotifier{}), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
