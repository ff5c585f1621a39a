package anim

import (
	"sync"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock, with its monotonic reading.
var SystemClock Clock = systemClock{}

// ManualClock only moves when told to. Used for single stepping and tests.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Stopwatch measures accumulated running time.
type Stopwatch struct {
	mu      sync.Mutex
	clock   Clock
	running bool
	since   time.Time
	total   time.Duration
}

// NewStopwatch creates a stopped stopwatch reading zero.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock
	}
	return &Stopwatch{clock: clock}
}

// Start or resume measuring. Starting a running stopwatch does nothing.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.since = s.clock.Now()
}

// Stop measuring, keeping the elapsed time.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.total += s.clock.Now().Sub(s.since)
	s.running = false
}

// Reset to zero. A running stopwatch keeps running from zero.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = 0
	s.since = s.clock.Now()
}

// Elapsed running time.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return s.total + s.clock.Now().Sub(s.since)
	}
	return s.total
}

// Running reports whether the stopwatch is measuring.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Stopwatch) setClock(c Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = c
	s.since = c.Now()
}
