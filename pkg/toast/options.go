package toast

import (
	"log/slog"
	"time"
)

// Defaults applied by New. The remove delay is deliberately oversized: it
// acts as a safeguard that eventually reclaims dismissed entries the
// rendering layer never removed explicitly, not as a user-facing timing.
const (
	DefaultCapacity     = 1
	DefaultDismissDelay = 5 * time.Second
	DefaultRemoveDelay  = 1000000 * time.Millisecond
	DefaultWatchBuffer  = 16
)

// Option configures a Queue during construction.
type Option func(*options)

type options struct {
	capacity     int
	dismissDelay time.Duration
	removeDelay  time.Duration
	watchBuffer  int
	log          *slog.Logger
}

func defaultOptions() *options {
	return &options{
		capacity:     DefaultCapacity,
		dismissDelay: DefaultDismissDelay,
		removeDelay:  DefaultRemoveDelay,
		watchBuffer:  DefaultWatchBuffer,
		log:          slog.Default(),
	}
}

// WithCapacity sets the maximum number of toasts retained at once.
// Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// WithDismissDelay sets how long a toast stays open before it is
// auto-dismissed. Zero disables auto-dismissal; negative values are
// ignored.
func WithDismissDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.dismissDelay = d
		}
	}
}

// WithRemoveDelay sets how long a dismissed toast lingers in the queue
// before its entry is deleted, leaving time for the exit transition.
// Non-positive values are ignored.
func WithRemoveDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.removeDelay = d
		}
	}
}

// WithWatchBuffer sets the channel buffer size for Watch subscribers.
func WithWatchBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.watchBuffer = n
		}
	}
}

// WithLogger sets the logger used for lifecycle events. Nil loggers are
// ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
