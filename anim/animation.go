// Package anim schedules independently timed components and drives them from a
// periodic tick.
//
// An Animation owns one ControlBlock per component. On every tick it reads the
// elapsed time once, starts every component whose offset has been reached and
// ticks it with the time since its own start. When every block has stopped the
// RepeatPolicy decides whether the animation stops, loops or pauses.
package anim

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"
)

// Animation schedules components against a shared stopwatch.
type Animation struct {
	// mu serialises ticks, lifecycle changes and drawing.
	mu       sync.Mutex
	running  bool
	paused   bool
	repeat   RepeatPolicy
	interval time.Duration
	watch    *Stopwatch
	timer    *timer
	log      *log.Logger

	boundsMu sync.RWMutex
	bounds   image.Rectangle

	blocksMu sync.Mutex
	blocks   []*ControlBlock

	notifyMu sync.Mutex
	started  []func()
	stopped  []func()
	redraw   []func()
	ticked   []func() bool

	redrawMu      sync.Mutex
	redrawAllowed bool
}

// NewAnimation creates a stopped animation that ticks every interval once
// started. An interval of zero never ticks by itself; call Tick to step it.
func NewAnimation(interval time.Duration) *Animation {
	a := new(Animation)
	a.interval = interval
	a.repeat = RepeatNone
	a.watch = NewStopwatch(SystemClock)
	a.timer = newTimer(interval, a.Tick)
	a.log = log.Default()
	a.redrawAllowed = true
	return a
}

// SetClock replaces the time source. Intended to be called before Start.
func (a *Animation) SetClock(c Clock) {
	a.watch.setClock(c)
}

// SetLogger replaces the logger used for lifecycle messages.
func (a *Animation) SetLogger(l *log.Logger) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.log = l
}

// Interval between ticks.
func (a *Animation) Interval() time.Duration {
	return a.interval
}

// SetBounds sets the rectangle that relative locators resolve against,
// typically the displayable area of the host.
func (a *Animation) SetBounds(r image.Rectangle) {
	a.boundsMu.Lock()
	defer a.boundsMu.Unlock()
	a.bounds = r
}

// Bounds of the animation.
func (a *Animation) Bounds() image.Rectangle {
	a.boundsMu.RLock()
	defer a.boundsMu.RUnlock()
	return a.bounds
}

// SetRepeat selects what happens when every component has finished. The policy
// is read each time the animation ends, so it can be changed while running.
func (a *Animation) SetRepeat(p RepeatPolicy) error {
	switch p {
	case RepeatNone, RepeatLoop, RepeatPause:
	case RepeatBounce:
		return ErrBounceUnsupported
	default:
		return fmt.Errorf("set repeat: unknown policy %v", p)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.repeat = p
	return nil
}

// Repeat policy.
func (a *Animation) Repeat() RepeatPolicy {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.repeat
}

// Add schedules c to start offset after the animation starts. The block stops
// when the component reports it is done.
func (a *Animation) Add(offset time.Duration, c Component) error {
	return a.AddFor(offset, 0, c)
}

// AddFor schedules c to start at offset and to be stopped duration after it
// started, whatever the component reports. Components that never finish on
// their own, like sprites without a duration, are scheduled this way.
func (a *Animation) AddFor(offset, duration time.Duration, c Component) error {
	if b, ok := c.(Binder); ok {
		if err := b.Bind(a); err != nil {
			return fmt.Errorf("add component: %w", err)
		}
	}

	a.blocksMu.Lock()
	defer a.blocksMu.Unlock()
	a.blocks = append(a.blocks, newControlBlock(offset, duration, c))
	return nil
}

func (a *Animation) snapshot() []*ControlBlock {
	a.blocksMu.Lock()
	defer a.blocksMu.Unlock()
	return append([]*ControlBlock(nil), a.blocks...)
}

// BlockInfo describes a ControlBlock at one moment.
type BlockInfo struct {
	Component Component
	Offset    time.Duration
	Duration  time.Duration
	State     BlockState
	StartedAt time.Duration
}

// Blocks describes every ControlBlock in the order they were added.
func (a *Animation) Blocks() []BlockInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	blocks := a.snapshot()
	info := make([]BlockInfo, len(blocks))
	for i, b := range blocks {
		info[i] = BlockInfo{
			Component: b.component,
			Offset:    b.offset,
			Duration:  b.duration,
			State:     b.State(),
			StartedAt: b.startedAt,
		}
	}
	return info
}

// Running reports whether the animation has been started and not stopped.
// A paused animation is still running.
func (a *Animation) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Paused reports whether the animation is paused.
func (a *Animation) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Elapsed animation time.
func (a *Animation) Elapsed() time.Duration {
	return a.watch.Elapsed()
}

// Start the timer and the stopwatch. Calling Start on a running animation
// restarts the timer without resetting anything else.
func (a *Animation) Start() {
	var ev events
	a.mu.Lock()
	a.start(&ev)
	a.mu.Unlock()
	a.dispatch(ev)
}

// Stop the timer and the stopwatch and stop every component that is running.
// Stopping a stopped animation does nothing.
func (a *Animation) Stop() {
	var ev events
	a.mu.Lock()
	a.stop(&ev)
	a.mu.Unlock()
	a.dispatch(ev)
}

// Pause halts time without touching the components. Sounds that are already
// playing carry on.
func (a *Animation) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pause()
}

// Unpause resumes a paused animation.
func (a *Animation) Unpause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running || !a.paused {
		return
	}
	a.paused = false
	a.watch.Start()
	a.timer.enable()
}

// Restart stops the animation, resets every component and starts again from zero.
func (a *Animation) Restart() {
	var ev events
	a.mu.Lock()
	a.restart(&ev)
	a.mu.Unlock()
	a.dispatch(ev)
}

// Tick performs one scheduling step and then asks for a redraw. It is what the
// internal timer calls, and can be called directly to single step a started
// animation.
func (a *Animation) Tick() {
	a.timer.disable()

	if a.fireTicked() {
		a.mu.Lock()
		if a.running && !a.paused {
			a.timer.enable()
		}
		a.mu.Unlock()
	} else {
		var ev events
		a.mu.Lock()
		a.step(&ev)
		a.mu.Unlock()
		a.dispatch(ev)
	}

	a.requestRedraw()
}

// Draw asks every started visual component to paint itself, in the order they
// were added, and marks the pending redraw as done. A finished sprite keeps its
// final appearance until it is reset.
func (a *Animation) Draw(c Canvas) {
	a.mu.Lock()
	for _, b := range a.snapshot() {
		if b.drawable != nil && b.started {
			b.drawable.Draw(c)
		}
	}
	a.mu.Unlock()
	a.painted()
}

func (a *Animation) start(ev *events) {
	a.running = true
	a.paused = false
	a.timer.enable()
	a.watch.Start()
	*ev = append(*ev, eventStarted)
}

func (a *Animation) stop(ev *events) {
	wasRunning := a.running
	a.running = false
	a.paused = false
	a.timer.disable()
	a.watch.Stop()

	for _, b := range a.snapshot() {
		b.stop()
	}
	if wasRunning {
		*ev = append(*ev, eventStopped)
	}
}

func (a *Animation) pause() {
	if !a.running || a.paused {
		return
	}
	a.paused = true
	a.watch.Stop()
	a.timer.disable()
}

func (a *Animation) restart(ev *events) {
	a.stop(ev)
	a.watch.Reset()

	// Undo in reverse so later components restore before earlier ones.
	blocks := a.snapshot()
	for i := len(blocks) - 1; i >= 0; i-- {
		blocks[i].reset()
	}
	a.start(ev)
}

// step does nothing on a stopped animation. A tick already in flight when
// Stop ran must not start blocks or apply the repeat policy. An animation
// with no blocks never ends.
func (a *Animation) step(ev *events) {
	if !a.running {
		return
	}
	now := a.watch.Elapsed()

	blocks := a.snapshot()
	live := len(blocks) == 0
	for _, b := range blocks {
		if b.tick(now) {
			live = true
		}
	}

	if live {
		if !a.paused {
			a.timer.enable()
		}
		return
	}
	a.ended(ev)
}

// ended applies the repeat policy once every block has stopped.
func (a *Animation) ended(ev *events) {
	switch a.repeat {
	case RepeatNone:
		a.stop(ev)
	case RepeatLoop:
		a.restart(ev)
	case RepeatPause:
		a.pause()
	default:
		a.log.Printf("Animation ended with unsupported repeat policy %v, stopping", a.repeat)
		a.stop(ev)
	}
}

func (a *Animation) requestRedraw() {
	a.redrawMu.Lock()
	allowed := a.redrawAllowed
	a.redrawAllowed = false
	a.redrawMu.Unlock()

	if allowed {
		a.notifyMu.Lock()
		fns := append([]func(){}, a.redraw...)
		a.notifyMu.Unlock()
		for _, fn := range fns {
			fn()
		}
	}
}

func (a *Animation) painted() {
	a.redrawMu.Lock()
	defer a.redrawMu.Unlock()
	a.redrawAllowed = true
}
