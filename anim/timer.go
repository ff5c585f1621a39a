package anim

import (
	"sync"
	"time"
)

// timer fires fn once per interval while enabled. Each firing disarms it; the
// callback has to re-enable it, so a slow callback never overlaps the next one.
type timer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	t        *time.Timer
}

func newTimer(interval time.Duration, fn func()) *timer {
	return &timer{interval: interval, fn: fn}
}

// enable arms the timer. A zero interval never fires.
func (t *timer) enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.interval <= 0 || t.t != nil {
		return
	}
	var fired *time.Timer
	fired = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		if t.t != fired {
			// Disabled (or re-armed) after this one was scheduled.
			t.mu.Unlock()
			return
		}
		t.t = nil
		t.mu.Unlock()
		t.fn()
	})
	t.t = fired
}

func (t *timer) disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

func (t *timer) enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.t != nil
}
