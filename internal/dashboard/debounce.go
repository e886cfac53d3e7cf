package dashboard

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into a single trailing-edge invocation
// after a quiet period. It backs the client-search input and resize-driven
// recomputation policies; the timing lives here so it can be tested without
// any rendering surface.
//
// Call does not cancel work already in flight, it only delays the next run.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Call schedules fn to run after the quiet period, replacing any previously
// scheduled call that has not fired yet.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
