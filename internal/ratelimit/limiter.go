// Package ratelimit implements a fixed-window request counter keyed by client
// address. State is process-local and lost on restart; the Consume contract is
// kept narrow so a shared external counter can replace this implementation if
// the service ever runs multi-instance.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// Defaults guarding the whole API surface.
const (
	DefaultPoints = 100
	DefaultWindow = 60 * time.Second
)

// ErrLimitExceeded is returned once the per-window point budget is exhausted.
var ErrLimitExceeded = errors.New("rate limit exceeded")

type window struct {
	count int
	start time.Time
}

// Limiter is a fixed-window counter. Windows are created lazily per key and
// swept once they expire.
type Limiter struct {
	mu      sync.Mutex
	points  int
	window  time.Duration
	buckets map[string]*window
	now     func() time.Time

	lastSweep time.Time
}

// New builds a limiter with the given budget per window.
func New(points int, windowDur time.Duration) *Limiter {
	return &Limiter{
		points:  points,
		window:  windowDur,
		buckets: make(map[string]*window),
		now:     time.Now,
	}
}

// Consume spends one point for key. It returns ErrLimitExceeded when the
// post-increment count exceeds the window budget; the window resets once its
// duration elapses.
func (l *Limiter) Consume(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) >= l.window {
		b = &window{start: now}
		l.buckets[key] = b
	}

	b.count++
	if b.count > l.points {
		return ErrLimitExceeded
	}
	return nil
}

// Remaining reports the points left in the current window for key.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || l.now().Sub(b.start) >= l.window {
		return l.points
	}
	if b.count >= l.points {
		return 0
	}
	return l.points - b.count
}

// sweep drops expired windows. Runs at most once per window duration so a hot
// limiter does not rescan the map on every call. Caller holds l.mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.start) >= l.window {
			delete(l.buckets, key)
		}
	}
}
