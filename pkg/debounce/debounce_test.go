package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FackJox/toastkit/pkg/debounce"
)

// collector records debounced values in arrival order.
type collector[T any] struct {
	mu     sync.Mutex
	values []T
}

func (c *collector[T]) add(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, v)
}

func (c *collector[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}

func TestDebouncer_BurstCollapsesToLastValue(t *testing.T) {
	t.Parallel()

	c := &collector[int]{}
	d := debounce.New(20*time.Millisecond, c.add)
	defer d.Stop()

	d.Set(1)
	d.Set(2)
	d.Set(3)

	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)
	assert.Equal(t, []int{3}, c.snapshot())

	// Quiet period passed; no further invocations.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []int{3}, c.snapshot())
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	t.Parallel()

	c := &collector[string]{}
	d := debounce.New(10*time.Millisecond, c.add)
	defer d.Stop()

	d.Set("a")
	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)

	d.Set("b")
	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 2
	}, time.Second, 2*time.Millisecond)

	assert.Equal(t, []string{"a", "b"}, c.snapshot())
}

func TestDebouncer_FlushFiresImmediately(t *testing.T) {
	t.Parallel()

	c := &collector[int]{}
	d := debounce.New(time.Hour, c.add)
	defer d.Stop()

	d.Set(7)
	d.Flush()

	assert.Equal(t, []int{7}, c.snapshot())

	// Nothing pending anymore; a second flush is a no-op.
	d.Flush()
	assert.Equal(t, []int{7}, c.snapshot())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	t.Parallel()

	c := &collector[int]{}
	d := debounce.New(10*time.Millisecond, c.add)

	d.Set(1)
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, c.snapshot())

	// Set after Stop is ignored.
	d.Set(2)
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, c.snapshot())
}

func TestDebouncer_CallbackMayReenter(t *testing.T) {
	t.Parallel()

	var d *debounce.Debouncer[int]
	c := &collector[int]{}
	d = debounce.New(5*time.Millisecond, func(v int) {
		c.add(v)
		if v < 3 {
			d.Set(v + 1)
		}
	})
	defer d.Stop()

	d.Set(1)

	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 3
	}, time.Second, 2*time.Millisecond)
	assert.Equal(t, []int{1, 2, 3}, c.snapshot())
}
