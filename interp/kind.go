package interp

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrUnsupportedType is returned when no interpolation exists for a value type.
var ErrUnsupportedType = errors.New("unsupported interpolation type")

// Kind tags the value types that can be interpolated.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindPoint
	KindRect
	KindColor
	KindString
	KindRune
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindFloat:   "float",
	KindPoint:   "point",
	KindRect:    "rect",
	KindColor:   "color",
	KindString:  "string",
	KindRune:    "rune",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Func interpolates two values of T.
type Func[T any] func(from, to T, fraction float64) T

// lerps is keyed by Kind. Sizes share the point interpolation.
var lerps = map[Kind]any{
	KindInt:    Func[int](Int),
	KindFloat:  Func[float64](Float),
	KindPoint:  Func[image.Point](Point),
	KindRect:   Func[image.Rectangle](Rect),
	KindColor:  Func[color.NRGBA](func(from, to color.NRGBA, f float64) color.NRGBA { return Color(from, to, f) }),
	KindString: Func[string](String),
	KindRune:   Func[rune](Rune),
}

// KindOf reports the Kind of T, or KindInvalid.
func KindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case int:
		return KindInt
	case float64:
		return KindFloat
	case image.Point:
		return KindPoint
	case image.Rectangle:
		return KindRect
	case color.NRGBA:
		return KindColor
	case string:
		return KindString
	case rune:
		return KindRune
	}
	return KindInvalid
}

// LerpFor resolves the interpolation function for T.
func LerpFor[T any]() (Func[T], error) {
	k := KindOf[T]()
	fn, ok := lerps[k].(Func[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%T: %w", zero, ErrUnsupportedType)
	}
	return fn, nil
}
