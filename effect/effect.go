// Package effect holds the effects that animate sprite properties.
//
// Each effect controls a single property. Start captures the value it will
// restore on Reset, Apply writes the value for a fraction in [0,1] and Stop is
// called when the effect's time is over.
package effect

import (
	"errors"
	"fmt"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/interp"
	"github.com/matt-g-everett/sparkle/sprite"
)

// ErrUnsupportedSprite is returned when an effect is bound to a sprite that lacks
// the property it animates.
var ErrUnsupportedSprite = errors.New("sprite does not support effect")

type base struct {
	sprite sprite.Sprite
	curve  interp.Curve
}

// Bind attaches the effect to s, once.
func (b *base) Bind(s sprite.Sprite) error {
	if b.sprite != nil && b.sprite != s {
		return anim.ErrAlreadyBound
	}
	b.sprite = s
	return nil
}

// SetCurve eases the fraction before it is applied.
func (b *base) SetCurve(c interp.Curve) {
	b.curve = c
}

func (b *base) eased(fraction float64) float64 {
	return interp.Eased(b.curve, fraction)
}

// Stop does nothing: Apply(1) has already committed the final value.
func (b *base) Stop() {}

func unsupported(e any, s sprite.Sprite) error {
	return fmt.Errorf("%T on %T: %w", e, s, ErrUnsupportedSprite)
}
