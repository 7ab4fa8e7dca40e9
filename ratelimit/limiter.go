package ratelimit

import (
	"sync"
	"time"
)

// DefaultWindow is the minimum spacing between two admitted requests from the
// same client.
const DefaultWindow = time.Second

// Clock returns the current time.
type Clock func() time.Time

type Option func(*Limiter)

// WithClock overrides time.Now.
func WithClock(clock Clock) Option {
	return func(l *Limiter) { l.now = clock }
}

// WithObserver registers a callback invoked with the number of tracked
// clients after each admission.
func WithObserver(fn func(trackedClients int)) Option {
	return func(l *Limiter) { l.observe = fn }
}

// Limiter admits at most one request per window for each client identity.
// Only admitted requests move the window, so a client that keeps retrying
// early stays throttled until a full window passes since its last admission.
type Limiter struct {
	window  time.Duration
	now     Clock
	observe func(int)

	mu   sync.Mutex
	last map[string]time.Time
}

func New(window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		window: window,
		now:    time.Now,
		last:   make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Admit reports whether a request from identity may proceed and, if so,
// records it.
func (l *Limiter) Admit(identity string) bool {
	l.mu.Lock()
	now := l.now()
	if last, ok := l.last[identity]; ok && now.Sub(last) < l.window {
		l.mu.Unlock()
		return false
	}
	l.last[identity] = now
	n := len(l.last)
	l.mu.Unlock()

	if l.observe != nil {
		l.observe(n)
	}
	return true
}

// Len returns the number of client identities seen so far.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.last)
}
