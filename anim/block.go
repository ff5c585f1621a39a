package anim

import (
	"time"
)

// BlockState is where a ControlBlock is in its lifecycle.
type BlockState int

const (
	Scheduled BlockState = iota
	Started
	Stopped
)

func (s BlockState) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// A ControlBlock schedules one component within an Animation.
type ControlBlock struct {
	component Component
	drawable  Drawable
	offset    time.Duration
	duration  time.Duration

	started   bool
	startedAt time.Duration
	stopped   bool
}

func newControlBlock(offset, duration time.Duration, c Component) *ControlBlock {
	b := new(ControlBlock)
	b.component = c
	b.drawable, _ = c.(Drawable)
	b.offset = offset
	b.duration = duration
	return b
}

// Component being scheduled.
func (b *ControlBlock) Component() Component { return b.component }

// Offset from the animation start at which the component starts.
func (b *ControlBlock) Offset() time.Duration { return b.offset }

// Duration after which the block stops its component; 0 waits for the
// component to report it is done.
func (b *ControlBlock) Duration() time.Duration { return b.duration }

// StartedAt is the animation time the component actually started.
func (b *ControlBlock) StartedAt() time.Duration { return b.startedAt }

// State of the block.
func (b *ControlBlock) State() BlockState {
	switch {
	case b.stopped:
		return Stopped
	case b.started:
		return Started
	}
	return Scheduled
}

// tick runs one scheduling step at animation time now. It reports whether the
// block is still live.
func (b *ControlBlock) tick(now time.Duration) bool {
	if b.stopped {
		return false
	}
	if now < b.offset {
		return true
	}

	if !b.started {
		b.started = true
		b.startedAt = now
		b.component.Start()
	}

	elapsed := now - b.startedAt
	more := b.component.Tick(elapsed)
	if b.duration > 0 && elapsed >= b.duration {
		more = false
	}
	if !more {
		b.stop()
	}
	return more
}

func (b *ControlBlock) stop() {
	if !b.started || b.stopped {
		return
	}
	b.stopped = true
	b.component.Stop()
}

func (b *ControlBlock) reset() {
	b.component.Reset()
	b.started = false
	b.startedAt = 0
	b.stopped = false
}
