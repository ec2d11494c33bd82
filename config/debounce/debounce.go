package debounce

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of triggers into a single callback that
// runs once the burst has been quiet for the configured delay.
type Debouncer struct {
	delay time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	callback func()
}

// New returns a debouncer with the given settle delay.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules the callback to run after the delay. Triggering
// again before it fires replaces the callback and restarts the clock.
// The callback runs on the timer goroutine.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.callback = callback
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		cb := d.callback
		d.timer = nil
		d.mu.Unlock()
		if cb != nil {
			cb()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
