// Package locate resolves points and rectangles against a sprite and the bounds
// of the animation it belongs to.
//
// Locators are evaluated every time an effect is applied and never cache their
// result, so they follow the animation bounds when the host is resized.
package locate

import (
	"image"
)

// Target is what a locator resolves against.
type Target interface {
	// Bounds of the sprite itself.
	Bounds() image.Rectangle
	// OuterBounds of the animation the sprite belongs to.
	OuterBounds() image.Rectangle
}

// PointLocator calculates a point.
type PointLocator interface {
	Point(t Target) image.Point
}

// RectLocator calculates a rectangle.
type RectLocator interface {
	Rect(t Target) image.Rectangle
}

// PointFunc adapts a function to a PointLocator.
type PointFunc func(t Target) image.Point

// Point calls f.
func (f PointFunc) Point(t Target) image.Point { return f(t) }

// RectFunc adapts a function to a RectLocator.
type RectFunc func(t Target) image.Rectangle

// Rect calls f.
func (f RectFunc) Rect(t Target) image.Rectangle { return f(t) }

// At is a fixed point.
func At(p image.Point) PointLocator {
	return PointFunc(func(Target) image.Point { return p })
}

// Fixed is a fixed rectangle.
func Fixed(r image.Rectangle) RectLocator {
	return RectFunc(func(Target) image.Rectangle { return r })
}

// SpriteCorner is an anchor on the sprite's bounds plus an offset.
func SpriteCorner(c Corner, offset image.Point) PointLocator {
	return PointFunc(func(t Target) image.Point {
		return c.Of(t.Bounds()).Add(offset)
	})
}

// AnimationCorner is an anchor on the animation's bounds plus an offset.
func AnimationCorner(c Corner, offset image.Point) PointLocator {
	return PointFunc(func(t Target) image.Point {
		return c.Of(t.OuterBounds()).Add(offset)
	})
}

// Proportion is the point at (px, py) of the way across the animation bounds,
// each in [0,1], plus an offset.
func Proportion(px, py float64, offset image.Point) PointLocator {
	return PointFunc(func(t Target) image.Point {
		r := t.OuterBounds()
		return image.Pt(
			r.Min.X+int(float64(r.Dx())*px),
			r.Min.Y+int(float64(r.Dy())*py),
		).Add(offset)
	})
}

// Aligned is the location that puts corner c of the sprite on the located point.
func Aligned(p PointLocator, c Corner) PointLocator {
	return PointFunc(func(t Target) image.Point {
		b := t.Bounds()
		anchor := c.Of(b).Sub(b.Min)
		return p.Point(t).Sub(anchor)
	})
}

// SpriteBounds is the sprite's current bounds.
func SpriteBounds() RectLocator {
	return RectFunc(func(t Target) image.Rectangle { return t.Bounds() })
}

// AnimationBounds is the animation's bounds shrunk by inset on every side.
func AnimationBounds(inset int) RectLocator {
	return RectFunc(func(t Target) image.Rectangle { return t.OuterBounds().Inset(inset) })
}

// RectAt is a rectangle of the given size whose top left is the located point.
func RectAt(p PointLocator, size image.Point) RectLocator {
	return RectFunc(func(t Target) image.Rectangle {
		min := p.Point(t)
		return image.Rectangle{Min: min, Max: min.Add(size)}
	})
}

// CornerRect is a rectangle of the given size aligned on corner c of the
// animation bounds, moved by offset.
func CornerRect(c Corner, size image.Point, offset image.Point) RectLocator {
	return RectFunc(func(t Target) image.Rectangle {
		outer := t.OuterBounds()
		r := image.Rectangle{Max: size}
		anchor := c.Of(r)
		min := c.Of(outer).Sub(anchor).Add(offset)
		return r.Add(min)
	})
}

// Inset shrinks a located rectangle by dx horizontally and dy vertically on each side.
func Inset(r RectLocator, dx, dy int) RectLocator {
	return RectFunc(func(t Target) image.Rectangle {
		rect := r.Rect(t)
		return image.Rect(rect.Min.X+dx, rect.Min.Y+dy, rect.Max.X-dx, rect.Max.Y-dy)
	})
}
