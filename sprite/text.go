package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/matt-g-everett/sparkle/anim"
)

// Text is a line of characters, one per cell, starting at its location.
type Text struct {
	Base
	text   string
	colour color.NRGBA
}

// NewText creates a Text at location. Its size follows the text.
func NewText(location image.Point, text string, colour color.Color) *Text {
	t := new(Text)
	t.Init(t, image.Rectangle{Min: location, Max: location})
	t.SetText(text)
	t.colour = color.NRGBAModel.Convert(colour).(color.NRGBA)
	return t
}

// Text being shown.
func (t *Text) Text() string { return t.text }

// SetText changes the text and resizes the sprite to fit.
func (t *Text) SetText(s string) {
	t.text = s
	t.SetSize(image.Pt(len([]rune(s)), 1))
}

// Color of the text.
func (t *Text) Color() color.NRGBA { return t.colour }

// SetColor changes the colour of the text.
func (t *Text) SetColor(c color.Color) {
	t.colour = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Draw writes the runes left to right.
func (t *Text) Draw(c anim.Canvas) {
	alpha := float64(t.colour.A) * clampUnit(t.opacity)
	if alpha <= 0 {
		return
	}
	fg := t.colour
	fg.A = uint8(math.Round(alpha))

	p := t.bounds.Min
	clip := c.Bounds()
	for i, r := range []rune(t.text) {
		at := image.Pt(p.X+i, p.Y)
		if at.In(clip) {
			c.SetRune(at.X, at.Y, r, fg)
		}
	}
}
