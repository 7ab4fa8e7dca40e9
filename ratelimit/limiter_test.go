package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter() (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	return New(DefaultWindow, WithClock(clock.Now)), clock
}

func TestAdmit_FirstRequest(t *testing.T) {
	l, _ := newTestLimiter()
	require.True(t, l.Admit("10.0.0.1"))
	require.Equal(t, 1, l.Len())
}

func TestAdmit_Window(t *testing.T) {
	l, clock := newTestLimiter()

	require.True(t, l.Admit("10.0.0.1"))

	clock.Advance(DefaultWindow / 2)
	require.False(t, l.Admit("10.0.0.1"))

	clock.Advance(DefaultWindow / 2)
	require.True(t, l.Admit("10.0.0.1"))
}

func TestAdmit_RejectionDoesNotResetWindow(t *testing.T) {
	l, clock := newTestLimiter()

	require.True(t, l.Admit("10.0.0.1"))
	for range 5 {
		clock.Advance(100 * time.Millisecond)
		require.False(t, l.Admit("10.0.0.1"))
	}

	clock.Advance(500 * time.Millisecond)
	require.True(t, l.Admit("10.0.0.1"))
}

func TestAdmit_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter()

	require.True(t, l.Admit("10.0.0.1"))
	require.True(t, l.Admit("10.0.0.2"))
	require.False(t, l.Admit("10.0.0.1"))
	require.Equal(t, 2, l.Len())
}

func TestAdmit_ConcurrentSameClient(t *testing.T) {
	l, _ := newTestLimiter()

	var admitted atomic.Int32
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Admit("10.0.0.1") {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), admitted.Load())
}

func TestAdmit_Observer(t *testing.T) {
	var tracked int
	l := New(DefaultWindow, WithObserver(func(n int) { tracked = n }))

	l.Admit("a")
	l.Admit("b")
	l.Admit("a")
	require.Equal(t, 2, tracked)
}
