package viewport

import (
	"sync"
	"time"

	"github.com/FackJox/toastkit/pkg/debounce"
)

// DefaultDebounce is the quiet period applied to width updates before the
// breakpoint is recomputed.
const DefaultDebounce = 150 * time.Millisecond

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithDebounce sets the quiet period for width updates. Negative values
// are ignored.
func WithDebounce(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		if d >= 0 {
			t.delay = d
		}
	}
}

// Tracker turns a stream of viewport width samples into breakpoint change
// notifications. Width updates are debounced, and listeners fire only when
// the resolved breakpoint actually changes, not on every resize sample.
// All methods are safe for concurrent use.
type Tracker struct {
	delay time.Duration
	deb   *debounce.Debouncer[int]

	mu        sync.Mutex
	current   Breakpoint
	known     bool
	listeners map[uint64]func(Breakpoint)
	nextSub   uint64
}

// NewTracker creates a breakpoint tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		delay:     DefaultDebounce,
		listeners: make(map[uint64]func(Breakpoint)),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.deb = debounce.New(t.delay, t.resolve)
	return t
}

// SetWidth feeds a new width sample to the tracker. The breakpoint is
// recomputed once samples stop arriving for the debounce period.
func (t *Tracker) SetWidth(width int) {
	t.deb.Set(width)
}

// Current returns the last resolved breakpoint. The second return is false
// until the first sample has settled.
func (t *Tracker) Current() (Breakpoint, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.known
}

// OnChange registers fn to be called whenever the resolved breakpoint
// changes. The returned function deregisters it. A nil fn is ignored.
func (t *Tracker) OnChange(fn func(Breakpoint)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.listeners[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.listeners, id)
		t.mu.Unlock()
	}
}

// Close cancels any pending width sample and drops all listeners.
func (t *Tracker) Close() {
	t.deb.Stop()

	t.mu.Lock()
	clear(t.listeners)
	t.mu.Unlock()
}

// resolve is the debounced sink for width samples.
func (t *Tracker) resolve(width int) {
	bp := FromWidth(width)

	t.mu.Lock()
	if t.known && bp == t.current {
		t.mu.Unlock()
		return
	}
	t.current = bp
	t.known = true
	listeners := make([]func(Breakpoint), 0, len(t.listeners))
	for _, fn := range t.listeners {
		listeners = append(listeners, fn)
	}
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(bp)
	}
}
