// Package sprite provides visual components whose properties are changed over
// time by effects.
package sprite

import (
	"image"
	"time"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/locate"
)

// An Effect changes one property of the sprite it is bound to as a function of
// how far through the effect we are.
type Effect interface {
	// Bind attaches the effect to s. An effect is bound once and never rebound.
	Bind(s Sprite) error
	// Start captures the value the effect will later restore.
	Start()
	// Apply sets the property for fraction in [0,1].
	Apply(fraction float64)
	// Stop is called once the effect's time is up.
	Stop()
	// Reset restores the value captured by Start.
	Reset()
}

// A Sprite is a drawable component with properties effects can change.
type Sprite interface {
	anim.Component
	anim.Drawable
	locate.Target

	Location() image.Point
	SetLocation(p image.Point)
	Size() image.Point
	SetSize(s image.Point)
	SetBounds(r image.Rectangle)
	Opacity() float64
	SetOpacity(o float64)
	Scale() float64
	SetScale(s float64)
	// Spin is the clockwise rotation in degrees.
	Spin() float64
	SetSpin(degrees float64)

	// Add runs e for duration, starting at start after the sprite starts. A zero
	// duration applies the end state immediately.
	Add(start, duration time.Duration, e Effect) error
}

const (
	// Forever keeps the sprite running until its ControlBlock stops it.
	Forever time.Duration = 0
	// UntilEffectsDone finishes the sprite once every effect has finished.
	UntilEffectsDone time.Duration = -1
)

type scheduled struct {
	effect   Effect
	start    time.Duration
	duration time.Duration
	started  bool
	stopped  bool
}

// Base holds the properties and effect schedule shared by all sprites. It is
// embedded by concrete sprites, which supply Draw and call Init.
type Base struct {
	self     Sprite
	owner    *anim.Animation
	bounds   image.Rectangle
	opacity  float64
	scale    float64
	spin     float64
	duration time.Duration
	effects  []*scheduled
}

// Init prepares b for use by self, the sprite embedding it.
func (b *Base) Init(self Sprite, bounds image.Rectangle) {
	b.self = self
	b.bounds = bounds
	b.opacity = 1
	b.scale = 1
	b.duration = Forever
}

// Bind attaches the sprite to the animation its locators resolve against.
func (b *Base) Bind(a *anim.Animation) error {
	if b.owner != nil && b.owner != a {
		return anim.ErrAlreadyBound
	}
	b.owner = a
	return nil
}

// OuterBounds of the animation the sprite belongs to.
func (b *Base) OuterBounds() image.Rectangle {
	if b.owner == nil {
		return image.Rectangle{}
	}
	return b.owner.Bounds()
}

// SetDuration decides when Tick reports the sprite is done: Forever,
// UntilEffectsDone or a fixed time since the sprite started.
func (b *Base) SetDuration(d time.Duration) {
	b.duration = d
}

func (b *Base) Bounds() image.Rectangle     { return b.bounds }
func (b *Base) SetBounds(r image.Rectangle) { b.bounds = r }
func (b *Base) Location() image.Point       { return b.bounds.Min }
func (b *Base) Size() image.Point           { return b.bounds.Size() }
func (b *Base) Opacity() float64            { return b.opacity }
func (b *Base) SetOpacity(o float64)        { b.opacity = o }
func (b *Base) Scale() float64              { return b.scale }
func (b *Base) SetScale(s float64)          { b.scale = s }
func (b *Base) Spin() float64               { return b.spin }
func (b *Base) SetSpin(degrees float64)     { b.spin = degrees }
func (b *Base) SetLocation(p image.Point)   { b.bounds = b.bounds.Add(p.Sub(b.bounds.Min)) }
func (b *Base) SetSize(s image.Point)       { b.bounds.Max = b.bounds.Min.Add(s) }

// Add binds e to the sprite and schedules it.
func (b *Base) Add(start, duration time.Duration, e Effect) error {
	if err := e.Bind(b.self); err != nil {
		return err
	}
	b.effects = append(b.effects, &scheduled{effect: e, start: start, duration: duration})
	return nil
}

// Start does nothing; effects start when their own time comes.
func (b *Base) Start() {}

// Tick applies every effect whose window contains elapsed.
func (b *Base) Tick(elapsed time.Duration) bool {
	pending := false
	for _, s := range b.effects {
		if s.stopped {
			continue
		}
		if elapsed < s.start {
			pending = true
			continue
		}
		if !s.started {
			s.started = true
			s.effect.Start()
		}

		if s.duration <= 0 || elapsed >= s.start+s.duration {
			s.effect.Apply(1)
			s.stopped = true
			s.effect.Stop()
			continue
		}
		s.effect.Apply(float64(elapsed-s.start) / float64(s.duration))
		pending = true
	}

	switch {
	case b.duration == Forever:
		return true
	case b.duration == UntilEffectsDone:
		return pending
	}
	return elapsed < b.duration
}

// Stop stops effects that are still running.
func (b *Base) Stop() {
	for _, s := range b.effects {
		if s.started && !s.stopped {
			s.stopped = true
			s.effect.Stop()
		}
	}
}

// Reset undoes the effects, latest first.
func (b *Base) Reset() {
	for i := len(b.effects) - 1; i >= 0; i-- {
		s := b.effects[i]
		if s.started {
			s.effect.Reset()
		}
		s.started = false
		s.stopped = false
	}
}
