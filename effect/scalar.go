package effect

import (
	"github.com/matt-g-everett/sparkle/interp"
	"github.com/matt-g-everett/sparkle/sprite"
)

// Scalar tweens one real-valued property: spin, opacity or scale.
type Scalar struct {
	base
	get         func(sprite.Sprite) float64
	set         func(sprite.Sprite, float64)
	from, to    float64
	fromCurrent bool
	original    float64
}

func newScalar(get func(sprite.Sprite) float64, set func(sprite.Sprite, float64), from, to float64, fromCurrent bool) *Scalar {
	s := new(Scalar)
	s.get = get
	s.set = set
	s.from = from
	s.to = to
	s.fromCurrent = fromCurrent
	return s
}

func getSpin(s sprite.Sprite) float64       { return s.Spin() }
func setSpin(s sprite.Sprite, v float64)    { s.SetSpin(v) }
func getOpacity(s sprite.Sprite) float64    { return s.Opacity() }
func setOpacity(s sprite.Sprite, v float64) { s.SetOpacity(v) }
func getScale(s sprite.Sprite) float64      { return s.Scale() }
func setScale(s sprite.Sprite, v float64)   { s.SetScale(v) }

// Rotate spins the sprite between two angles in degrees.
func Rotate(from, to float64) *Scalar { return newScalar(getSpin, setSpin, from, to, false) }

// RotateTo spins the sprite from its current angle.
func RotateTo(to float64) *Scalar { return newScalar(getSpin, setSpin, 0, to, true) }

// Fade changes opacity between two values in [0,1].
func Fade(from, to float64) *Scalar { return newScalar(getOpacity, setOpacity, from, to, false) }

// FadeTo changes opacity from its current value.
func FadeTo(to float64) *Scalar { return newScalar(getOpacity, setOpacity, 0, to, true) }

// Scale changes the drawing scale between two factors.
func Scale(from, to float64) *Scalar { return newScalar(getScale, setScale, from, to, false) }

// ScaleTo changes the drawing scale from its current factor.
func ScaleTo(to float64) *Scalar { return newScalar(getScale, setScale, 0, to, true) }

func (s *Scalar) Start() {
	s.original = s.get(s.sprite)
	if s.fromCurrent {
		s.from = s.original
	}
}

func (s *Scalar) Apply(fraction float64) {
	s.set(s.sprite, interp.Float(s.from, s.to, s.eased(fraction)))
}

func (s *Scalar) Reset() {
	s.set(s.sprite, s.original)
}
