package locate

import (
	"fmt"
	"image"
	"strings"
)

// Corner names one of nine anchor positions on a rectangle.
type Corner int

const (
	TopLeft Corner = iota
	TopCenter
	TopRight
	MiddleLeft
	Center
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

var cornerNames = [...]string{
	"top-left", "top-center", "top-right",
	"middle-left", "center", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// ParseCorner is the inverse of Corner.String.
func ParseCorner(s string) (Corner, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TopLeft, nil
	}
	for i, n := range cornerNames {
		if n == s {
			return Corner(i), nil
		}
	}
	return TopLeft, fmt.Errorf("unknown corner %q", s)
}

// Of is the anchor point on r.
func (c Corner) Of(r image.Rectangle) image.Point {
	var x, y int
	switch c % 3 {
	case 0:
		x = r.Min.X
	case 1:
		x = r.Min.X + r.Dx()/2
	default:
		x = r.Max.X
	}
	switch c / 3 {
	case 0:
		y = r.Min.Y
	case 1:
		y = r.Min.Y + r.Dy()/2
	default:
		y = r.Max.Y
	}
	return image.Pt(x, y)
}
