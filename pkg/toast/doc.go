// Package toast provides an in-memory queue of transient notifications
// with observer-based change delivery and timer-driven expiry.
//
// The queue keeps a bounded, newest-first list of toasts. Enqueuing past
// capacity evicts the oldest entries. Each toast moves through a small
// lifecycle: it is created visible, flagged closed on dismissal (kept in
// the queue so the rendering layer can play an exit transition), and
// deleted after a configurable removal delay. Auto-expiry dismisses a
// toast after the dismiss delay unless it was dismissed or removed first.
//
// # Basic Usage
//
//	q := toast.New(toast.WithCapacity(3))
//	defer q.Close()
//
//	unsubscribe := q.Subscribe(func(s toast.Snapshot) {
//	    render(s)
//	})
//	defer unsubscribe()
//
//	h := q.Enqueue(toast.Toast{
//	    Title:       "Saved",
//	    Description: "Your changes have been saved",
//	})
//
//	// Later: amend or close it through the handle.
//	h.Update(toast.Patch{Description: ptr("Saved twice")})
//	h.Dismiss()
//
// # Observers
//
// Two observer surfaces are available. Subscribe registers a callback that
// is invoked synchronously, exactly once per mutation, with the
// post-mutation snapshot. Watch returns a channel-based subscriber backed
// by pkg/broadcast for consumers that prefer a select loop; its delivery
// is non-blocking and drops snapshots for consumers that fall behind.
//
// Callbacks run outside the queue's internal lock, so observers may call
// back into the queue. A panicking observer is recovered and logged.
//
// # Error Handling
//
// Mutations are total: unknown ids, repeated dismissals, and operations on
// a closed queue are silent no-ops. No queue operation panics or returns
// an error.
//
// # Configuration
//
// Defaults can come from the environment via LoadConfig (TOAST_CAPACITY,
// TOAST_DISMISS_DELAY, TOAST_REMOVE_DELAY, TOAST_WATCH_BUFFER) and
// NewFromConfig, with functional options taking precedence.
package toast
