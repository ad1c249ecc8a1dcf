package viewport_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FackJox/toastkit/pkg/viewport"
)

type changes struct {
	mu  sync.Mutex
	got []viewport.Breakpoint
}

func (c *changes) record(bp viewport.Breakpoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, bp)
}

func (c *changes) snapshot() []viewport.Breakpoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]viewport.Breakpoint, len(c.got))
	copy(out, c.got)
	return out
}

func TestTracker_NotifiesOnBreakpointChange(t *testing.T) {
	t.Parallel()

	tr := viewport.NewTracker(viewport.WithDebounce(10 * time.Millisecond))
	defer tr.Close()

	c := &changes{}
	unsubscribe := tr.OnChange(c.record)
	defer unsubscribe()

	tr.SetWidth(375)
	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)
	assert.Equal(t, []viewport.Breakpoint{viewport.BreakpointMobile}, c.snapshot())

	bp, known := tr.Current()
	assert.True(t, known)
	assert.Equal(t, viewport.BreakpointMobile, bp)

	tr.SetWidth(800)
	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 2
	}, time.Second, 2*time.Millisecond)
	assert.Equal(t, viewport.BreakpointTablet, c.snapshot()[1])
}

func TestTracker_SameTierDoesNotNotify(t *testing.T) {
	t.Parallel()

	tr := viewport.NewTracker(viewport.WithDebounce(10 * time.Millisecond))
	defer tr.Close()

	c := &changes{}
	unsubscribe := tr.OnChange(c.record)
	defer unsubscribe()

	tr.SetWidth(375)
	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)

	// Still mobile: no second notification.
	tr.SetWidth(400)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, c.snapshot(), 1)
}

func TestTracker_DebouncesResizeBursts(t *testing.T) {
	t.Parallel()

	tr := viewport.NewTracker(viewport.WithDebounce(20 * time.Millisecond))
	defer tr.Close()

	c := &changes{}
	unsubscribe := tr.OnChange(c.record)
	defer unsubscribe()

	// A drag-resize burst crossing several tiers settles on the last width.
	for w := 375; w <= 1400; w += 100 {
		tr.SetWidth(w)
	}

	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)
	assert.Equal(t, []viewport.Breakpoint{viewport.BreakpointDesktop}, c.snapshot())
}

func TestTracker_UnknownBeforeFirstSample(t *testing.T) {
	t.Parallel()

	tr := viewport.NewTracker()
	defer tr.Close()

	_, known := tr.Current()
	assert.False(t, known)
}

func TestTracker_Unsubscribe(t *testing.T) {
	t.Parallel()

	tr := viewport.NewTracker(viewport.WithDebounce(10 * time.Millisecond))
	defer tr.Close()

	c := &changes{}
	unsubscribe := tr.OnChange(c.record)
	unsubscribe()

	tr.SetWidth(375)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, c.snapshot())
}
