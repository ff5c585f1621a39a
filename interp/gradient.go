package interp

import (
	"image/color"
	"sort"
)

// Stop is a colour at a position in [0,1] along a Gradient.
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Gradient is a look-up table of colours interpolated between stops.
type Gradient []Stop

// NewGradient sorts the stops by position.
func NewGradient(stops ...Stop) Gradient {
	g := Gradient(append([]Stop(nil), stops...))
	sort.SliceStable(g, func(i, j int) bool { return g[i].Pos < g[j].Pos })
	return g
}

// At gets the colour at t on the gradient.
func (g Gradient) At(t float64) color.NRGBA {
	if len(g) == 0 {
		return color.NRGBA{}
	}
	if t <= g[0].Pos {
		return g[0].Color
	}
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c2.Color
			}
			return Color(c1.Color, c2.Color, (t-c1.Pos)/(c2.Pos-c1.Pos))
		}
	}

	// At (or past) the last stop.
	return g[len(g)-1].Color
}
