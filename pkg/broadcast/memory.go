package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is the in-process Broadcaster implementation. Slow
// consumers have values dropped and are unsubscribed rather than blocking
// Publish. All methods are safe for concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	buffer      int
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemoryBroadcaster creates an in-process broadcaster. Each subscriber
// gets its own channel with the given buffer size; a minimum of 1 is
// enforced so sends never block on an empty buffer.
func NewMemoryBroadcaster[T any](buffer int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		buffer:      max(buffer, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a new subscriber. When ctx is cancelled the
// subscription is cleaned up automatically. Subscribing to a closed
// broadcaster returns an already-closed subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.buffer)
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-b.done:
				// Close already tore the subscriber down.
			}
		}()
	}

	return sub
}

// Publish sends v to every active subscriber without blocking. Subscribers
// whose buffers are full miss the value and are unsubscribed. Returns nil
// even when some subscribers missed the value.
func (b *MemoryBroadcaster[T]) Publish(ctx context.Context, v T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for sub := range b.subscribers {
		if !sub.send(v) {
			// Unsubscribe asynchronously: the write lock cannot be taken
			// while this read lock is held.
			go b.unsubscribe(sub)
		}
	}

	return nil
}

// Close shuts the broadcaster down and closes all subscribers. Safe to call
// multiple times; after Close, Publish has no effect and Subscribe returns
// closed subscribers.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	close(b.done)
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	// Wait for the context-cancellation watchers so Close never races an
	// in-flight unsubscribe.
	b.cleanupWg.Wait()

	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
