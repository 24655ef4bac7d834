// Package ratelimit provides a per-key sliding-log rate limiter.
//
// One implementation serves both the chat and contact endpoints,
// parameterized by (limit, window). Keys are best-effort client network
// identifiers; the limiter is a throttle, not a hard security control.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request timestamps per key within a sliding window.
type Limiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration

	// now is replaceable in tests to simulate clock advance.
	now func() time.Time
}

// New creates a limiter allowing limit requests per window per key and
// starts the background eviction goroutine.
func New(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
	l.startEviction()
	return l
}

// Allow checks and consumes a slot for key: an admitted request is recorded
// immediately. Returns false when the key is at its limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.prune(key, now)

	if len(recent) >= l.limit {
		l.requests[key] = recent
		return false
	}

	l.requests[key] = append(recent, now)
	return true
}

// AtLimit reports whether key has exhausted its window without consuming a
// slot. Callers that validate further before committing pair this with
// Record.
func (l *Limiter) AtLimit(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.prune(key, l.now())
	l.requests[key] = recent
	return len(recent) >= l.limit
}

// Record consumes a slot for key unconditionally. Used after AtLimit once
// all other validation has passed, so rejected requests don't burn quota.
func (l *Limiter) Record(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.requests[key] = append(l.prune(key, now), now)
}

// prune returns key's timestamps still inside the window. Caller must hold mu.
func (l *Limiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	var recent []time.Time
	for _, t := range l.requests[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}

// startEviction runs a background goroutine that periodically removes
// expired keys, preventing unbounded memory growth from one-off clients.
func (l *Limiter) startEviction() {
	go func() {
		ticker := time.NewTicker(l.window)
		defer ticker.Stop()
		for range ticker.C {
			l.mu.Lock()
			now := l.now()
			for key := range l.requests {
				fresh := l.prune(key, now)
				if len(fresh) == 0 {
					delete(l.requests, key)
				} else {
					l.requests[key] = fresh
				}
			}
			l.mu.Unlock()
		}
	}()
}
