package locate

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Direction of travel around a rectangle.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// ParseDirection accepts "clockwise"/"cw" and "counter-clockwise"/"ccw".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clockwise", "cw":
		return Clockwise, nil
	case "counter-clockwise", "counterclockwise", "ccw":
		return CounterClockwise, nil
	}
	return Clockwise, fmt.Errorf("unknown direction %q", s)
}

// A Walker is a PointLocator whose result depends on a walk progress in [0,1].
type Walker interface {
	PointLocator
	SetProgress(p float64)
	Progress() float64
}

type progress struct {
	value float64
}

func (p *progress) SetProgress(v float64) {
	p.value = math.Max(0, math.Min(1, v))
}

func (p *progress) Progress() float64 {
	return p.value
}

// RectangleWalker walks the perimeter of a located rectangle.
type RectangleWalker struct {
	progress
	rect      RectLocator
	direction Direction
	start     Corner
}

// NewRectangleWalker starts at corner start and travels in direction dir. A start
// that is not on the perimeter (Center) starts at the top left.
func NewRectangleWalker(rect RectLocator, dir Direction, start Corner) *RectangleWalker {
	w := new(RectangleWalker)
	w.rect = rect
	w.direction = dir
	w.start = start
	return w
}

// Point is the position on the perimeter for the current progress.
func (w *RectangleWalker) Point(t Target) image.Point {
	r := w.rect.Rect(t)
	width, height := float64(r.Dx()), float64(r.Dy())
	perimeter := 2 * (width + height)
	if perimeter == 0 {
		return r.Min
	}

	d := w.value * perimeter
	if w.direction == CounterClockwise {
		d = -d
	}
	d = math.Mod(startDistance(w.start, width, height)+d, perimeter)
	if d < 0 {
		d += perimeter
	}
	if w.value >= 1 {
		// A full lap ends where it started.
		d = startDistance(w.start, width, height)
	}

	var x, y float64
	switch {
	case d < width:
		x, y = d, 0
	case d < width+height:
		x, y = width, d-width
	case d < 2*width+height:
		x, y = width-(d-width-height), height
	default:
		x, y = 0, height-(d-2*width-height)
	}
	return image.Pt(r.Min.X+int(math.Round(x)), r.Min.Y+int(math.Round(y)))
}

// startDistance is the clockwise distance from the top left to corner c.
func startDistance(c Corner, w, h float64) float64 {
	switch c {
	case TopCenter:
		return w / 2
	case TopRight:
		return w
	case MiddleRight:
		return w + h/2
	case BottomRight:
		return w + h
	case BottomCenter:
		return w + h + w/2
	case BottomLeft:
		return 2*w + h
	case MiddleLeft:
		return 2*w + h + h/2
	}
	return 0
}

// PointWalker walks a sequence of points at constant speed.
type PointWalker struct {
	progress
	points []image.Point
}

// NewPointWalker copies points.
func NewPointWalker(points []image.Point) *PointWalker {
	w := new(PointWalker)
	w.points = append([]image.Point(nil), points...)
	return w
}

// Point interpolates along the segments in proportion to their length.
func (w *PointWalker) Point(Target) image.Point {
	switch len(w.points) {
	case 0:
		return image.Point{}
	case 1:
		return w.points[0]
	}
	if w.value <= 0 {
		return w.points[0]
	}
	if w.value >= 1 {
		return w.points[len(w.points)-1]
	}

	lengths := make([]float64, len(w.points)-1)
	var total float64
	for i := range lengths {
		d := w.points[i+1].Sub(w.points[i])
		lengths[i] = math.Hypot(float64(d.X), float64(d.Y))
		total += lengths[i]
	}
	if total == 0 {
		return w.points[0]
	}

	target := w.value * total
	for i, l := range lengths {
		if target <= l && l > 0 {
			f := target / l
			a, b := w.points[i], w.points[i+1]
			return image.Pt(
				a.X+int(math.Round(float64(b.X-a.X)*f)),
				a.Y+int(math.Round(float64(b.Y-a.Y)*f)),
			)
		}
		target -= l
	}
	return w.points[len(w.points)-1]
}
