package effect

import (
	"math"

	"github.com/matt-g-everett/sparkle/sprite"
)

// Repeater runs another effect several times within its own duration.
type Repeater struct {
	inner       sprite.Effect
	repetitions int
}

// Repeat runs inner repetitions times.
func Repeat(repetitions int, inner sprite.Effect) *Repeater {
	if repetitions < 1 {
		repetitions = 1
	}
	r := new(Repeater)
	r.inner = inner
	r.repetitions = repetitions
	return r
}

func (r *Repeater) Bind(s sprite.Sprite) error { return r.inner.Bind(s) }
func (r *Repeater) Start()                     { r.inner.Start() }
func (r *Repeater) Stop()                      { r.inner.Stop() }
func (r *Repeater) Reset()                     { r.inner.Reset() }

// Apply hands the inner effect a sawtooth that rises repetitions times. The
// last call, at 1, always reaches the inner effect's end state.
func (r *Repeater) Apply(fraction float64) {
	if fraction >= 1 {
		r.inner.Apply(1)
		return
	}
	_, f := math.Modf(math.Max(0, fraction) * float64(r.repetitions))
	r.inner.Apply(f)
}
