package effect

import (
	"image/color"

	"github.com/matt-g-everett/sparkle/interp"
	"github.com/matt-g-everett/sparkle/sprite"
)

// Texter is a sprite showing a string.
type Texter interface {
	Text() string
	SetText(s string)
}

// Colorer is a sprite drawn in a single colour.
type Colorer interface {
	Color() color.NRGBA
	SetColor(c color.Color)
}

// TextMorph turns the sprite's text into another string one character at a time.
type TextMorph struct {
	base
	target   Texter
	to       string
	from     string
	original string
}

// MorphTo creates a TextMorph ending on to.
func MorphTo(to string) *TextMorph {
	m := new(TextMorph)
	m.to = to
	return m
}

func (m *TextMorph) Bind(s sprite.Sprite) error {
	t, ok := s.(Texter)
	if !ok {
		return unsupported(m, s)
	}
	if err := m.base.Bind(s); err != nil {
		return err
	}
	m.target = t
	return nil
}

func (m *TextMorph) Start() {
	m.original = m.target.Text()
	m.from = m.original
}

func (m *TextMorph) Apply(fraction float64) {
	m.target.SetText(interp.String(m.from, m.to, m.eased(fraction)))
}

// Stop leaves the destination text in place.
func (m *TextMorph) Stop() {
	m.target.SetText(m.to)
}

func (m *TextMorph) Reset() {
	m.target.SetText(m.original)
}

// Tint walks the sprite's colour along a gradient.
type Tint struct {
	base
	target      Colorer
	gradient    interp.Gradient
	to          color.NRGBA
	fromCurrent bool
	original    color.NRGBA
}

// TintThrough creates a Tint over g.
func TintThrough(g interp.Gradient) *Tint {
	t := new(Tint)
	t.gradient = g
	return t
}

// TintTo fades from the sprite's colour at start to c.
func TintTo(c color.Color) *Tint {
	t := new(Tint)
	t.to = color.NRGBAModel.Convert(c).(color.NRGBA)
	t.fromCurrent = true
	return t
}

func (t *Tint) Bind(s sprite.Sprite) error {
	c, ok := s.(Colorer)
	if !ok {
		return unsupported(t, s)
	}
	if err := t.base.Bind(s); err != nil {
		return err
	}
	t.target = c
	return nil
}

func (t *Tint) Start() {
	t.original = t.target.Color()
	if t.fromCurrent {
		t.gradient = interp.NewGradient(interp.Stop{Pos: 0, Color: t.original}, interp.Stop{Pos: 1, Color: t.to})
	}
}

func (t *Tint) Apply(fraction float64) {
	t.target.SetColor(t.gradient.At(t.eased(fraction)))
}

func (t *Tint) Reset() {
	t.target.SetColor(t.original)
}
