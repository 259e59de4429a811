package checker

import (
	"context"
	"time"
)

// DefaultInterval is the pause between passes when none is configured.
const DefaultInterval = 30 * time.Second

// Runner drives repeated due-check passes on a fixed interval.
type Runner struct {
	checker  *Checker
	interval time.Duration

	// OnPass, when set, is invoked after every pass with its result.
	OnPass func(fired int, err error)
}

// NewRunner returns a Runner executing a pass every interval.
// Non-positive intervals fall back to DefaultInterval.
func NewRunner(c *Checker, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{checker: c, interval: interval}
}

// Run executes an immediate pass, then one per interval, until the context
// is cancelled. The first pass catches anything that came due while no
// watcher was running. Pass errors are reported through OnPass and do not
// stop the loop.
func (r *Runner) Run(ctx context.Context) error {
	r.pass(time.Now())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			r.pass(now)
		}
	}
}

func (r *Runner) pass(now time.Time) {
	fired, err := r.checker.Pass(now)
	if err != nil {
		r.checker.Logf("due-check pass: %v", err)
	}
	if r.OnPass != nil {
		r.OnPass(len(fired), err)
	}
}
