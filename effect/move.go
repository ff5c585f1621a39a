package effect

import (
	"image"

	"github.com/matt-g-everett/sparkle/interp"
	"github.com/matt-g-everett/sparkle/locate"
)

// Move slides the sprite's location between two points.
type Move struct {
	base
	from     locate.PointLocator
	to       locate.PointLocator
	original image.Point
	start    image.Point
}

// MoveTo moves from wherever the sprite is when the effect starts.
func MoveTo(to locate.PointLocator) *Move {
	return MoveFrom(nil, to)
}

// MoveFrom moves between two located points. A nil from is the location at start.
func MoveFrom(from, to locate.PointLocator) *Move {
	m := new(Move)
	m.from = from
	m.to = to
	return m
}

func (m *Move) Start() {
	m.original = m.sprite.Location()
	m.start = m.original
}

func (m *Move) Apply(fraction float64) {
	from := m.start
	if m.from != nil {
		from = m.from.Point(m.sprite)
	}
	m.sprite.SetLocation(interp.Point(from, m.to.Point(m.sprite), m.eased(fraction)))
}

func (m *Move) Reset() {
	m.sprite.SetLocation(m.original)
}

// Goto puts the sprite on a located point on every tick, ignoring the fraction.
// Chained after a Move it holds the sprite in place while the target moves.
type Goto struct {
	base
	to       locate.PointLocator
	original image.Point
}

// GotoPoint creates a Goto.
func GotoPoint(to locate.PointLocator) *Goto {
	g := new(Goto)
	g.to = to
	return g
}

func (g *Goto) Start() {
	g.original = g.sprite.Location()
}

func (g *Goto) Apply(float64) {
	g.sprite.SetLocation(g.to.Point(g.sprite))
}

func (g *Goto) Reset() {
	g.sprite.SetLocation(g.original)
}

// Bounds changes the whole rectangle of the sprite.
type Bounds struct {
	base
	from     locate.RectLocator
	to       locate.RectLocator
	original image.Rectangle
}

// BoundsFrom interpolates between two located rectangles. Either may be nil,
// meaning the sprite's bounds when the effect starts.
func BoundsFrom(from, to locate.RectLocator) *Bounds {
	b := new(Bounds)
	b.from = from
	b.to = to
	return b
}

// BoundsTo interpolates from the sprite's bounds to a located rectangle.
func BoundsTo(to locate.RectLocator) *Bounds {
	return BoundsFrom(nil, to)
}

func (b *Bounds) Start() {
	b.original = b.sprite.Bounds()
}

func (b *Bounds) Apply(fraction float64) {
	from, to := b.original, b.original
	if b.from != nil {
		from = b.from.Rect(b.sprite)
	}
	if b.to != nil {
		to = b.to.Rect(b.sprite)
	}
	b.sprite.SetBounds(interp.Rect(from, to, b.eased(fraction)))
}

func (b *Bounds) Reset() {
	b.sprite.SetBounds(b.original)
}
