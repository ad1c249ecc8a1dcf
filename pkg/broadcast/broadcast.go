package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values published through a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel on which published values arrive.
	// The channel is closed when the subscriber is closed.
	Receive() <-chan T

	// Close closes the subscriber and releases resources. Close is
	// idempotent and safe to call multiple times.
	Close() error
}

// Broadcaster fans published values out to multiple subscribers.
// Implementations must handle slow consumers without blocking the
// publisher, typically by dropping values.
type Broadcaster[T any] interface {
	// Subscribe creates a subscriber that receives every subsequently
	// published value. The subscription is torn down automatically when
	// ctx is cancelled.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish delivers v to all active subscribers. Values may be dropped
	// for subscribers whose buffers are full.
	Publish(ctx context.Context, v T) error

	// Close shuts the broadcaster down and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.Mutex
}

func newSubscriber[T any](buffer int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan T, buffer)}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers v without blocking. It reports false when the subscriber
// is closed or its buffer is full, which marks it for removal.
func (s *subscriber[T]) send(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
