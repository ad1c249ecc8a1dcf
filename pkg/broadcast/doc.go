// Package broadcast provides type-safe fan-out of values to multiple
// subscribers with non-blocking delivery.
//
// It backs the channel-based observer surface of pkg/toast: the queue
// publishes each state snapshot and any number of consumers receive it
// over their own buffered channel.
//
// Basic usage:
//
//	caster := broadcast.NewMemoryBroadcaster[string](16)
//	defer caster.Close()
//
//	sub := caster.Subscribe(ctx)
//	defer sub.Close()
//
//	caster.Publish(ctx, "hello")
//
//	for v := range sub.Receive() {
//		fmt.Println(v)
//	}
//
// Delivery is best effort: a subscriber whose buffer is full misses the
// value and is unsubscribed, so a stuck consumer can never block the
// publisher. Subscriptions are cleaned up when their context is cancelled,
// when the subscriber is closed, or when the broadcaster is closed.
package broadcast
