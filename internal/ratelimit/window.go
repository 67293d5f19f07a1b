// Package ratelimit gates repeated form submissions per identity. The
// identity is whatever key the endpoint chooses (ip_email for contact,
// bare email for subscribe and download).
package ratelimit

import (
	"sync"
	"time"
)

// Window is the shared submission window across all three endpoints.
const Window = time.Hour

// Per-endpoint submission thresholds within one Window.
const (
	ContactLimit   = 3
	SubscribeLimit = 3
	DownloadLimit  = 5
)

// Limiter decides whether an identity may submit right now. Implementations
// never return an error; an unavailable backend fails open.
//
// SlidingWindow rejects without recording the attempt. RedisWindow counts
// every attempt, rejected ones included; its window still expires a fixed
// interval after the first increment, so rejected attempts never extend a
// lockout, the counter just overshoots the limit until the key expires.
type Limiter interface {
	Allow(identity string) bool
}

// SlidingWindow keeps an in-process map of identity to submission times.
// State is ephemeral and resets on restart; for multi-instance deployments
// use RedisWindow instead so every instance observes the same counts.
type SlidingWindow struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clock   func() time.Time
	entries map[string][]time.Time
}

// NewSlidingWindow constructs a limiter allowing limit submissions per
// identity within window.
func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:   limit,
		window:  window,
		clock:   time.Now,
		entries: make(map[string][]time.Time),
	}
}

// WithClock overrides the time source, for tests.
func (w *SlidingWindow) WithClock(clock func() time.Time) *SlidingWindow {
	w.clock = clock
	return w
}

// Allow prunes submissions older than the window, rejects without recording
// when the identity is at its limit, and records the submission otherwise.
func (w *SlidingWindow) Allow(identity string) bool {
	now := w.clock()
	cutoff := now.Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	recent := w.entries[identity][:0]
	for _, at := range w.entries[identity] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}

	if len(recent) >= w.limit {
		w.entries[identity] = recent
		return false
	}

	w.entries[identity] = append(recent, now)
	return true
}

// Prune drops identities whose every submission has aged out of the window.
// Safe to call from a janitor goroutine.
func (w *SlidingWindow) Prune() {
	cutoff := w.clock().Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	for identity, submissions := range w.entries {
		live := submissions[:0]
		for _, at := range submissions {
			if at.After(cutoff) {
				live = append(live, at)
			}
		}
		if len(live) == 0 {
			delete(w.entries, identity)
			continue
		}
		w.entries[identity] = live
	}
}
