package interp

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrOutOfRange is returned when a colour component lies outside its domain.
var ErrOutOfRange = errors.New("colour component out of range")

// FromHSB builds a colour from hue [0,360], saturation [0,100] and brightness [0,100].
func FromHSB(hue, saturation, brightness float64, alpha uint8) (color.NRGBA, error) {
	if hue < 0 || hue > 360 {
		return color.NRGBA{}, fmt.Errorf("hue %v: %w", hue, ErrOutOfRange)
	}
	if saturation < 0 || saturation > 100 {
		return color.NRGBA{}, fmt.Errorf("saturation %v: %w", saturation, ErrOutOfRange)
	}
	if brightness < 0 || brightness > 100 {
		return color.NRGBA{}, fmt.Errorf("brightness %v: %w", brightness, ErrOutOfRange)
	}

	r, g, b := colorful.Hsv(math.Mod(hue, 360), saturation/100, brightness/100).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ToHSB splits a colour into hue [0,360), saturation [0,100] and brightness [0,100].
// Alpha is ignored.
func ToHSB(c color.Color) (hue, saturation, brightness float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	opaque := color.NRGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
	cf, _ := colorful.MakeColor(opaque)
	h, s, v := cf.Hsv()
	return h, clamp(s*100, 0, 100), clamp(v*100, 0, 100)
}

// Color interpolates in hue/saturation/brightness space, which keeps the midpoint
// of two saturated colours saturated. Alpha is interpolated in raw channel space.
func Color(from, to color.Color, fraction float64) color.NRGBA {
	f := color.NRGBAModel.Convert(from).(color.NRGBA)
	t := color.NRGBAModel.Convert(to).(color.NRGBA)
	if fraction <= 0 {
		return f
	}
	if fraction >= 1 {
		return t
	}

	h1, s1, b1 := ToHSB(f)
	h2, s2, b2 := ToHSB(t)
	alpha := uint8(Int(int(f.A), int(t.A), fraction))

	c, err := FromHSB(
		clamp(Float(h1, h2, fraction), 0, 360),
		clamp(Float(s1, s2, fraction), 0, 100),
		clamp(Float(b1, b2, fraction), 0, 100),
		alpha)
	if err != nil {
		// Components are clamped above.
		panic(err)
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
