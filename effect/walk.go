package effect

import (
	"image"

	"github.com/matt-g-everett/sparkle/locate"
)

// Walk moves the sprite along the path of a Walker, keeping one of the sprite's
// own anchor points on the walked position.
type Walk struct {
	base
	walker   locate.Walker
	aligned  locate.PointLocator
	original image.Point
}

// WalkWith walks any Walker.
func WalkWith(w locate.Walker, align locate.Corner) *Walk {
	k := new(Walk)
	k.walker = w
	k.aligned = locate.Aligned(w, align)
	return k
}

// RectangleWalk walks the perimeter of a located rectangle.
func RectangleWalk(rect locate.RectLocator, dir locate.Direction, start, align locate.Corner) *Walk {
	return WalkWith(locate.NewRectangleWalker(rect, dir, start), align)
}

// PointWalk walks through a list of points.
func PointWalk(points []image.Point, align locate.Corner) *Walk {
	return WalkWith(locate.NewPointWalker(points), align)
}

func (k *Walk) Start() {
	k.original = k.sprite.Location()
}

func (k *Walk) Apply(fraction float64) {
	k.walker.SetProgress(k.eased(fraction))
	k.sprite.SetLocation(k.aligned.Point(k.sprite))
}

func (k *Walk) Reset() {
	k.walker.SetProgress(0)
	k.sprite.SetLocation(k.original)
}
