package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/matt-g-everett/sparkle/anim"
)

// Shape is a filled rectangle that honours opacity, scale and spin.
type Shape struct {
	Base
	colour color.NRGBA
}

// NewShape creates a Shape covering bounds.
func NewShape(bounds image.Rectangle, colour color.Color) *Shape {
	s := new(Shape)
	s.Init(s, bounds)
	s.SetColor(colour)
	return s
}

// Color of the shape.
func (s *Shape) Color() color.NRGBA { return s.colour }

// SetColor changes the colour of the shape.
func (s *Shape) SetColor(c color.Color) {
	s.colour = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Draw rasterises the scaled and rotated rectangle.
func (s *Shape) Draw(c anim.Canvas) {
	alpha := float64(s.colour.A) * clampUnit(s.opacity)
	if alpha <= 0 || s.scale <= 0 {
		return
	}
	fill := s.colour
	fill.A = uint8(math.Round(alpha))

	b := s.bounds
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	hw := float64(b.Dx()) * s.scale / 2
	hh := float64(b.Dy()) * s.scale / 2

	radius := math.Hypot(hw, hh)
	area := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	).Intersect(c.Bounds())

	sin, cos := math.Sincos(-s.spin * math.Pi / 180)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			lx := dx*cos - dy*sin
			ly := dx*sin + dy*cos
			if math.Abs(lx) <= hw && math.Abs(ly) <= hh {
				c.Blend(x, y, fill)
			}
		}
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
