package interp

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// Curve remaps a linear fraction. Curves map 0 to 0 and 1 to 1.
type Curve func(t float64) float64

var curves = map[string]Curve{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
	"out-back":     ease.OutBack,
}

// CurveByName looks up a named easing curve. An empty name is linear.
func CurveByName(name string) (Curve, error) {
	if name == "" {
		return ease.Linear, nil
	}
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve %q", name)
	}
	return c, nil
}

// CurveNames lists the known curves, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Eased applies c to fraction, leaving the end points exact.
func Eased(c Curve, fraction float64) float64 {
	if c == nil || fraction <= 0 || fraction >= 1 {
		return fraction
	}
	return c(fraction)
}

// Pulse builds a table of length values that rise along c from 0 and fall back
// the same way, peaking in the middle.
func Pulse(length int, c Curve) []float64 {
	if c == nil {
		c = ease.Linear
	}
	lut := make([]float64, max(length, 0))
	half := length / 2
	if half == 0 {
		return lut
	}
	increment := 1.0 / float64(half)
	for i, j := 0, length-1; i < half; i, j = i+1, j-1 {
		value := c(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}
