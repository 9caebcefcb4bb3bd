// Package ratelimit provides the per-IP submission limiter. The limiter is
// the only state shared between requests; it does its own locking.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter answers whether one more request may proceed for a key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Config bounds requests per key within a rolling window.
type Config struct {
	Requests int
	Window   time.Duration
}

// FixedWindow is an in-memory fixed-window limiter keyed by client IP.
type FixedWindow struct {
	cfg     Config
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

type window struct {
	count     int
	startTime time.Time
}

func NewFixedWindow(cfg Config) *FixedWindow {
	return &FixedWindow{
		cfg:     cfg,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow counts the request against the key's current window and reports
// whether it fits under the limit.
func (f *FixedWindow) Allow(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	w, ok := f.windows[key]
	if !ok {
		w = &window{startTime: now}
		f.windows[key] = w
	}

	if now.Sub(w.startTime) >= f.cfg.Window {
		w.count = 0
		w.startTime = now
	}

	if w.count >= f.cfg.Requests {
		return false, nil
	}
	w.count++
	return true, nil
}

// StartCleanup prunes idle keys until ctx is cancelled. Run it in its own
// goroutine; without it the windows map grows with every distinct IP.
func (f *FixedWindow) StartCleanup(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.cleanup()
		}
	}
}

func (f *FixedWindow) cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	cutoff := f.now().Add(-2 * f.cfg.Window)
	for key, w := range f.windows {
		if w.startTime.Before(cutoff) {
			delete(f.windows, key)
		}
	}
}
