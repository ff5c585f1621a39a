package effect

import "math"

// Blink fades the sprite in, holds it, fades it out and keeps it hidden. The four
// phases are proportions of the effect's duration. A fraction that falls exactly
// on a boundary belongs to the later phase.
type Blink struct {
	base
	bounds   [4]float64
	original float64
}

// NewBlink creates a Blink with phases in proportion fadeIn:visible:fadeOut:invisible.
func NewBlink(fadeIn, visible, fadeOut, invisible float64) *Blink {
	b := new(Blink)
	total := fadeIn + visible + fadeOut + invisible
	if total <= 0 {
		total = 1
	}
	b.bounds = [4]float64{
		fadeIn / total,
		(fadeIn + visible) / total,
		(fadeIn + visible + fadeOut) / total,
		1,
	}
	return b
}

func (b *Blink) Start() {
	b.original = b.sprite.Opacity()
}

func (b *Blink) Apply(fraction float64) {
	b.sprite.SetOpacity(b.opacity(b.eased(fraction)))
}

// opacity puts a fraction on a phase boundary in the later phase.
func (b *Blink) opacity(f float64) float64 {
	f = math.Max(0, math.Min(1, f))
	switch {
	case f < b.bounds[0]:
		return f / b.bounds[0]
	case f < b.bounds[1]:
		return 1
	case f < b.bounds[2]:
		return 1 - (f-b.bounds[1])/(b.bounds[2]-b.bounds[1])
	}
	return 0
}

// Stop puts the original opacity back.
func (b *Blink) Stop() {
	b.sprite.SetOpacity(b.original)
}

func (b *Blink) Reset() {
	b.sprite.SetOpacity(b.original)
}
