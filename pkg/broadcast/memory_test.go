package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FackJox/toastkit/pkg/broadcast"
)

func TestMemoryBroadcaster_PublishAndReceive(t *testing.T) {
	t.Parallel()

	caster := broadcast.NewMemoryBroadcaster[string](4)
	defer caster.Close()

	sub := caster.Subscribe(context.Background())
	defer sub.Close()

	require.NoError(t, caster.Publish(context.Background(), "hello"))

	select {
	case v := <-sub.Receive():
		assert.Equal(t, "hello", v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
}

func TestMemoryBroadcaster_MultipleSubscribers(t *testing.T) {
	t.Parallel()

	caster := broadcast.NewMemoryBroadcaster[int](4)
	defer caster.Close()

	first := caster.Subscribe(context.Background())
	defer first.Close()
	second := caster.Subscribe(context.Background())
	defer second.Close()

	require.NoError(t, caster.Publish(context.Background(), 42))

	for _, sub := range []broadcast.Subscriber[int]{first, second} {
		select {
		case v := <-sub.Receive():
			assert.Equal(t, 42, v)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for value")
		}
	}
}

func TestMemoryBroadcaster_SlowConsumerDropped(t *testing.T) {
	t.Parallel()

	caster := broadcast.NewMemoryBroadcaster[int](1)
	defer caster.Close()

	sub := caster.Subscribe(context.Background())
	defer sub.Close()

	// Fill the buffer, then overflow it. The subscriber misses the second
	// value and is unsubscribed; its channel is closed asynchronously.
	require.NoError(t, caster.Publish(context.Background(), 1))
	require.NoError(t, caster.Publish(context.Background(), 2))

	assert.Equal(t, 1, <-sub.Receive())

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Receive():
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond, "slow subscriber should be closed")
}

func TestMemoryBroadcaster_ContextCancelUnsubscribes(t *testing.T) {
	t.Parallel()

	caster := broadcast.NewMemoryBroadcaster[int](4)
	defer caster.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := caster.Subscribe(ctx)

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Receive():
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond, "cancelled subscription should be closed")
}

func TestMemoryBroadcaster_SubscribeAfterClose(t *testing.T) {
	t.Parallel()

	caster := broadcast.NewMemoryBroadcaster[int](4)
	require.NoError(t, caster.Close())

	sub := caster.Subscribe(context.Background())

	_, ok := <-sub.Receive()
	assert.False(t, ok, "subscriber on a closed broadcaster must be closed")
}

func TestMemoryBroadcaster_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	caster := broadcast.NewMemoryBroadcaster[int](4)
	sub := caster.Subscribe(context.Background())

	require.NoError(t, caster.Close())
	require.NoError(t, caster.Close())

	_, ok := <-sub.Receive()
	assert.False(t, ok)

	// Publishing after close is a harmless no-op.
	assert.NoError(t, caster.Publish(context.Background(), 1))
}

func TestSubscriber_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	caster := broadcast.NewMemoryBroadcaster[int](4)
	defer caster.Close()

	sub := caster.Subscribe(context.Background())
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
}
