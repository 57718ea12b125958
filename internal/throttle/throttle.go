// Package throttle rate-limits a handler function. The wrapped handler
// stays pure; composition happens where listeners are attached.
package throttle

import (
	"sync"
	"time"
)

// Throttle invokes fn at most once per interval. The first call in a quiet
// period fires immediately; calls inside the window coalesce into a single
// trailing invocation so the last burst event is never lost.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	last     time.Time
	timer    *time.Timer
	stopped  bool
}

// New creates a throttle around fn.
func New(interval time.Duration, fn func()) *Throttle {
	return &Throttle{interval: interval, fn: fn}
}

// Invoke requests an invocation. Safe to call arbitrarily often.
func (t *Throttle) Invoke() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	now := time.Now()
	if elapsed := now.Sub(t.last); elapsed >= t.interval {
		t.last = now
		t.mu.Unlock()
		t.fn()
		return
	} else if t.timer == nil {
		t.timer = time.AfterFunc(t.interval-elapsed, t.fire)
	}
	t.mu.Unlock()
}

// Stop cancels any pending trailing invocation. Invoke becomes a no-op.
func (t *Throttle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Throttle) fire() {
	t.mu.Lock()
	t.timer = nil
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.last = time.Now()
	t.mu.Unlock()
	t.fn()
}
