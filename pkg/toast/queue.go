package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FackJox/toastkit/pkg/broadcast"
	"github.com/FackJox/toastkit/pkg/logger"
)

// entry pairs a toast with its lifecycle bookkeeping. Timer handles are
// stored explicitly so that dismissal, removal, and eviction can reliably
// cancel pending transitions for the entry.
type entry struct {
	toast        Toast
	state        State
	dismissTimer *time.Timer
	removeTimer  *time.Timer
}

func (e *entry) stopTimers() {
	if e.dismissTimer != nil {
		e.dismissTimer.Stop()
		e.dismissTimer = nil
	}
	if e.removeTimer != nil {
		e.removeTimer.Stop()
		e.removeTimer = nil
	}
}

// Queue is the authoritative in-memory store of active toasts. It keeps at
// most capacity entries, newest first, auto-expires entries after the
// dismiss delay, and notifies observers synchronously on every mutation.
//
// All methods are safe for concurrent use. Mutations never return errors:
// unknown ids are no-ops (see package documentation).
type Queue struct {
	mu        sync.Mutex
	entries   []*entry
	listeners map[uint64]Listener
	nextSub   uint64
	closed    bool

	capacity     int
	dismissDelay time.Duration
	removeDelay  time.Duration
	log          *slog.Logger
	caster       *broadcast.MemoryBroadcaster[Snapshot]
}

// Handle refers to an enqueued toast and carries its generated id.
// The zero Handle is inert.
type Handle struct {
	ID uuid.UUID

	q *Queue
}

// Update applies a partial update to the referenced toast.
func (h Handle) Update(p Patch) {
	if h.q != nil {
		h.q.Update(h.ID, p)
	}
}

// Dismiss begins the close transition for the referenced toast.
func (h Handle) Dismiss() {
	if h.q != nil {
		h.q.Dismiss(h.ID)
	}
}

// New creates a toast queue with the given options applied over the
// package defaults.
func New(opts ...Option) *Queue {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Queue{
		listeners:    make(map[uint64]Listener),
		capacity:     cfg.capacity,
		dismissDelay: cfg.dismissDelay,
		removeDelay:  cfg.removeDelay,
		log:          cfg.log,
		caster:       broadcast.NewMemoryBroadcaster[Snapshot](cfg.watchBuffer),
	}
}

// NewFromConfig creates a queue from an environment-derived Config.
// Explicit options override config values.
func NewFromConfig(cfg Config, opts ...Option) *Queue {
	base := []Option{
		WithCapacity(cfg.Capacity),
		WithDismissDelay(cfg.DismissDelay),
		WithRemoveDelay(cfg.RemoveDelay),
		WithWatchBuffer(cfg.WatchBuffer),
	}
	return New(append(base, opts...)...)
}

// Enqueue adds a toast to the head of the queue, assigning an id and
// creation time if unset and forcing Open to true. When the queue exceeds
// capacity the oldest entries are evicted, cancelling their pending
// transitions. Returns a handle for follow-up updates or dismissal.
func (q *Queue) Enqueue(t Toast) Handle {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return Handle{ID: t.ID}
	}

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if !t.Variant.Valid() {
		t.Variant = VariantDefault
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	t.Open = true

	e := &entry{toast: t, state: StateVisible}
	q.entries = append([]*entry{e}, q.entries...)

	for len(q.entries) > q.capacity {
		victim := q.entries[len(q.entries)-1]
		victim.stopTimers()
		victim.state = StateRemoved
		q.entries = q.entries[:len(q.entries)-1]
		q.log.LogAttrs(context.Background(), slog.LevelDebug, "evicted oldest toast over capacity",
			logger.ToastID(victim.toast.ID),
			slog.Int("capacity", q.capacity),
		)
	}

	if q.dismissDelay > 0 {
		id := t.ID
		e.dismissTimer = time.AfterFunc(q.dismissDelay, func() {
			q.expire(id)
		})
	}

	q.notifyLocked(nil)
	return Handle{ID: t.ID, q: q}
}

// Update merges p into the toast matching id. Fields not set in p are
// preserved. Setting Open to false behaves like Dismiss for that toast.
// Unknown ids are ignored.
func (q *Queue) Update(id uuid.UUID, p Patch) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}

	e := q.findLocked(id)
	if e == nil {
		q.mu.Unlock()
		return
	}

	p.apply(&e.toast)

	var openChanged []func(bool)
	if p.Open != nil && !*p.Open {
		if _, cb := q.dismissLocked(e); cb != nil {
			openChanged = append(openChanged, cb)
		}
	}

	q.notifyLocked(openChanged)
}

// Dismiss flags the matching toasts as closed (Open=false) without removing
// them, cancels their auto-expiry timers, and schedules deferred removal so
// the exit transition can complete. With no ids, every toast is dismissed.
// Already-dismissed and unknown ids are ignored.
func (q *Queue) Dismiss(ids ...uuid.UUID) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}

	var openChanged []func(bool)
	changed := false
	for _, e := range q.selectLocked(ids) {
		ok, cb := q.dismissLocked(e)
		if !ok {
			continue
		}
		changed = true
		if cb != nil {
			openChanged = append(openChanged, cb)
		}
	}

	if !changed {
		q.mu.Unlock()
		return
	}

	q.notifyLocked(openChanged)
}

// Remove deletes the matching toasts from the queue immediately, cancelling
// any pending timers. With no ids, the queue is emptied. Unknown ids are
// ignored.
func (q *Queue) Remove(ids ...uuid.UUID) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}

	keep := q.entries[:0]
	removed := 0
	for _, e := range q.entries {
		if len(ids) == 0 || containsID(ids, e.toast.ID) {
			e.stopTimers()
			e.state = StateRemoved
			removed++
			continue
		}
		keep = append(keep, e)
	}
	q.entries = keep

	if removed == 0 {
		q.mu.Unlock()
		return
	}

	q.notifyLocked(nil)
}

// Subscribe registers fn to be called synchronously with the post-mutation
// snapshot on every queue mutation. The returned function deregisters the
// listener and is idempotent. A nil fn is ignored.
func (q *Queue) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	q.mu.Lock()
	id := q.nextSub
	q.nextSub++
	q.listeners[id] = fn
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.listeners, id)
		q.mu.Unlock()
	}
}

// Watch returns a channel-based subscriber that receives the post-mutation
// snapshot for every queue mutation. Delivery is non-blocking; a consumer
// that falls behind is dropped. The subscription ends when ctx is
// cancelled, the subscriber is closed, or the queue is closed.
func (q *Queue) Watch(ctx context.Context) broadcast.Subscriber[Snapshot] {
	return q.caster.Subscribe(ctx)
}

// Toasts returns a copy of the current queue contents, newest first.
func (q *Queue) Toasts() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Len returns the number of toasts currently in the queue, including ones
// in their close transition.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Close stops all pending timers, drops all entries and listeners, and
// closes the snapshot broadcaster. Operations on a closed queue are no-ops.
// Close is idempotent.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true

	for _, e := range q.entries {
		e.stopTimers()
		e.state = StateRemoved
	}
	q.entries = nil
	clear(q.listeners)
	q.mu.Unlock()

	return q.caster.Close()
}

// expire is the auto-dismiss timer callback. The entry may have been
// dismissed, removed, or evicted since the timer was scheduled; the
// lifecycle check makes a stale fire a no-op.
func (q *Queue) expire(id uuid.UUID) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}

	e := q.findLocked(id)
	if e == nil || !e.state.CanTransition(StateClosing) {
		q.mu.Unlock()
		return
	}

	q.log.LogAttrs(context.Background(), slog.LevelDebug, "toast auto-dismissed after delay",
		logger.ToastID(id),
		logger.Duration(q.dismissDelay),
	)

	var openChanged []func(bool)
	if _, cb := q.dismissLocked(e); cb != nil {
		openChanged = append(openChanged, cb)
	}
	q.notifyLocked(openChanged)
}

// reap is the deferred-removal timer callback scheduled at dismissal.
func (q *Queue) reap(id uuid.UUID) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}

	e := q.findLocked(id)
	if e == nil || !e.state.CanTransition(StateRemoved) {
		q.mu.Unlock()
		return
	}

	q.log.LogAttrs(context.Background(), slog.LevelDebug, "toast removed after close transition",
		logger.ToastID(id),
	)

	e.stopTimers()
	e.state = StateRemoved
	q.deleteLocked(id)
	q.notifyLocked(nil)
}

// dismissLocked performs the visible -> closing transition for e and
// schedules its deferred removal. It reports whether the transition
// happened, along with the entry's OnOpenChange callback (nil when unset).
// Caller holds q.mu.
func (q *Queue) dismissLocked(e *entry) (bool, func(bool)) {
	if !e.state.CanTransition(StateClosing) {
		return false, nil
	}

	e.state = StateClosing
	e.toast.Open = false
	if e.dismissTimer != nil {
		e.dismissTimer.Stop()
		e.dismissTimer = nil
	}

	// A new removal timer always replaces any previous one for this id.
	if e.removeTimer != nil {
		e.removeTimer.Stop()
	}
	id := e.toast.ID
	e.removeTimer = time.AfterFunc(q.removeDelay, func() {
		q.reap(id)
	})

	return true, e.toast.OnOpenChange
}

// notifyLocked snapshots the state, releases the lock, and then invokes
// OnOpenChange callbacks and listeners outside the lock so observers may
// safely call back into the queue. Each listener is invoked exactly once
// per mutation with the post-mutation snapshot. Caller holds q.mu; the
// lock is released on return.
func (q *Queue) notifyLocked(openChanged []func(bool)) {
	snap := q.snapshotLocked()
	listeners := make([]Listener, 0, len(q.listeners))
	for _, fn := range q.listeners {
		listeners = append(listeners, fn)
	}
	q.mu.Unlock()

	for _, cb := range openChanged {
		q.invoke(func() { cb(false) })
	}
	for _, fn := range listeners {
		q.invoke(func() { fn(snap) })
	}
	_ = q.caster.Publish(context.Background(), snap)
}

// invoke runs an observer callback, recovering panics so one faulty
// observer cannot poison the queue.
func (q *Queue) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.LogAttrs(context.Background(), slog.LevelError, "recovered panic in toast observer",
				slog.Any("panic", r),
			)
		}
	}()
	fn()
}

func (q *Queue) snapshotLocked() Snapshot {
	snap := make(Snapshot, len(q.entries))
	for i, e := range q.entries {
		snap[i] = e.toast
	}
	return snap
}

func (q *Queue) findLocked(id uuid.UUID) *entry {
	for _, e := range q.entries {
		if e.toast.ID == id {
			return e
		}
	}
	return nil
}

func (q *Queue) deleteLocked(id uuid.UUID) {
	keep := q.entries[:0]
	for _, e := range q.entries {
		if e.toast.ID != id {
			keep = append(keep, e)
		}
	}
	q.entries = keep
}

// selectLocked resolves ids to entries; with no ids it returns all entries.
func (q *Queue) selectLocked(ids []uuid.UUID) []*entry {
	if len(ids) == 0 {
		out := make([]*entry, len(q.entries))
		copy(out, q.entries)
		return out
	}

	var out []*entry
	for _, e := range q.entries {
		if containsID(ids, e.toast.ID) {
			out = append(out, e)
		}
	}
	return out
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
