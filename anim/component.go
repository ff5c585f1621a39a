package anim

import (
	"errors"
	"image"
	"image/color"
	"time"
)

// ErrAlreadyBound is returned when a component or effect that already belongs to
// one owner is given to another.
var ErrAlreadyBound = errors.New("already bound to another owner")

// A Component is anything an Animation can schedule: sprites, sounds.
type Component interface {
	// Start is called on the first tick at or after the component's start offset.
	Start()
	// Tick advances the component to elapsed since its own start. It returns
	// false once the component has nothing more to do.
	Tick(elapsed time.Duration) bool
	// Stop releases whatever the component holds while running.
	Stop()
	// Reset reverts the component to its state before Start.
	Reset()
}

// A Binder is a component that needs to know its Animation, e.g. to resolve
// locators against the animation bounds. A component can only be bound once.
type Binder interface {
	Bind(a *Animation) error
}

// A Drawable component can paint itself.
type Drawable interface {
	Draw(c Canvas)
}

// Canvas is the drawing surface handed to Draw. The animation never looks at
// what is drawn on it.
type Canvas interface {
	Bounds() image.Rectangle
	// Blend composites c, using its alpha, onto the cell at (x, y).
	Blend(x, y int, c color.Color)
	// SetRune writes a character in colour c at (x, y).
	SetRune(x, y int, r rune, c color.Color)
}
