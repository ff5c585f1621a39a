// Package interp calculates values part way between a "from" and a "to" value.
//
// Every function returns from exactly when the fraction is at or below 0 and to
// exactly when it is at or above 1. In between, values are interpolated linearly,
// composite values field by field.
package interp

import (
	"image"
)

// Int interpolates between two integers, truncating toward zero.
func Int(from, to int, fraction float64) int {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	return from + int(float64(to-from)*fraction)
}

// Float interpolates between two reals.
func Float(from, to, fraction float64) float64 {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	return from + (to-from)*fraction
}

// Point interpolates X and Y independently.
func Point(from, to image.Point, fraction float64) image.Point {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	return image.Pt(Int(from.X, to.X, fraction), Int(from.Y, to.Y, fraction))
}

// Size interpolates a width/height pair held in an image.Point.
func Size(from, to image.Point, fraction float64) image.Point {
	return Point(from, to, fraction)
}

// Rect interpolates the location and the size of a rectangle independently, so
// that a rectangle which only moves keeps its size on every frame.
func Rect(from, to image.Rectangle, fraction float64) image.Rectangle {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	min := Point(from.Min, to.Min, fraction)
	size := Size(from.Size(), to.Size(), fraction)
	return image.Rectangle{Min: min, Max: min.Add(size)}
}
