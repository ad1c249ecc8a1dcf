package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of Set calls into a single callback
// invocation carrying the most recent value, fired after the configured
// quiet period. At most one timer is pending at a time: every Set replaces
// the previous one. All methods are safe for concurrent use.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	armed   bool
	stopped bool
}

// New creates a debouncer that calls fn with the last Set value once no
// new value has arrived for the given delay. A non-positive delay fires on
// the next timer tick, effectively coalescing only same-instant bursts.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Set records v as the pending value and restarts the quiet-period timer.
// Calls after Stop are ignored.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = v
	d.armed = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Flush fires the pending value immediately, if any, cancelling the timer.
func (d *Debouncer[T]) Flush() {
	d.fire()
}

// Stop cancels any pending invocation and disables the debouncer.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire delivers the pending value. The callback runs outside the lock so
// it may call Set again without deadlocking.
func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if !d.armed || d.stopped {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	fn := d.fn
	d.mu.Unlock()

	if fn != nil {
		fn(v)
	}
}
