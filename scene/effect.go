package scene

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/matt-g-everett/sparkle/effect"
	"github.com/matt-g-everett/sparkle/interp"
	"github.com/matt-g-everett/sparkle/locate"
	"github.com/matt-g-everett/sparkle/sprite"
)

// Effect describes one effect on a sprite. Which fields matter depends on Type.
type Effect struct {
	Type     string        `yaml:"type"`
	Start    time.Duration `yaml:"start"`
	Duration time.Duration `yaml:"duration"`
	Curve    string        `yaml:"curve"`
	// Repeat runs the effect this many times within its duration.
	Repeat int `yaml:"repeat"`

	// move, goto
	From *Point `yaml:"from"`
	To   *Point `yaml:"to"`

	// rotate, fade, scale
	Value     float64  `yaml:"value"`
	FromValue *float64 `yaml:"fromValue"`

	// bounds, walk
	Rect     *Rect `yaml:"rect"`
	FromRect *Rect `yaml:"fromRect"`

	// walk, path
	Direction   string   `yaml:"direction"`
	StartCorner string   `yaml:"startCorner"`
	Align       string   `yaml:"align"`
	Points      [][2]int `yaml:"points"`

	// morph
	Text string `yaml:"text"`

	// tint
	Colour   string         `yaml:"colour"`
	Gradient []GradientStop `yaml:"gradient"`

	// blink: fade in, visible, fade out, invisible
	Phases [4]float64 `yaml:"phases"`
}

// GradientStop is a colour at a position along a tint gradient.
type GradientStop struct {
	Pos    float64 `yaml:"pos"`
	Colour string  `yaml:"colour"`
}

// Point describes a point locator. Exactly one of At, Corner or Proportion is
// used, in that order.
type Point struct {
	At *[2]int `yaml:"at"`
	// Corner of the animation bounds, or of the sprite when Of is "sprite".
	Corner     string      `yaml:"corner"`
	Of         string      `yaml:"of"`
	Proportion *[2]float64 `yaml:"proportion"`
	Offset     [2]int      `yaml:"offset"`
	// Align places this corner of the sprite on the point instead of its location.
	Align string `yaml:"align"`
}

// Rect describes a rectangle locator: fixed bounds, the animation bounds inset
// by Inset, or Size placed at a corner of the animation bounds.
type Rect struct {
	Bounds *[4]int `yaml:"bounds"`
	Inset  *int    `yaml:"inset"`
	Corner string  `yaml:"corner"`
	Size   [2]int  `yaml:"size"`
	Offset [2]int  `yaml:"offset"`
}

type curved interface {
	SetCurve(c interp.Curve)
}

func (e Effect) build() (sprite.Effect, error) {
	built, err := e.effect()
	if err != nil {
		return nil, err
	}

	if e.Curve != "" {
		c, err := interp.CurveByName(e.Curve)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		cv, ok := built.(curved)
		if !ok {
			return nil, fmt.Errorf("%w: %s takes no curve", ErrInvalid, e.Type)
		}
		cv.SetCurve(c)
	}

	if e.Repeat > 1 {
		built = effect.Repeat(e.Repeat, built)
	}
	return built, nil
}

func (e Effect) effect() (sprite.Effect, error) {
	switch strings.ToLower(e.Type) {
	case "move":
		to, err := e.To.locator()
		if err != nil {
			return nil, err
		}
		if e.From == nil {
			return effect.MoveTo(to), nil
		}
		from, err := e.From.locator()
		if err != nil {
			return nil, err
		}
		return effect.MoveFrom(from, to), nil
	case "goto":
		to, err := e.To.locator()
		if err != nil {
			return nil, err
		}
		return effect.GotoPoint(to), nil
	case "rotate":
		if e.FromValue != nil {
			return effect.Rotate(*e.FromValue, e.Value), nil
		}
		return effect.RotateTo(e.Value), nil
	case "fade":
		if e.FromValue != nil {
			return effect.Fade(*e.FromValue, e.Value), nil
		}
		return effect.FadeTo(e.Value), nil
	case "scale":
		if e.FromValue != nil {
			return effect.Scale(*e.FromValue, e.Value), nil
		}
		return effect.ScaleTo(e.Value), nil
	case "bounds":
		to, err := e.Rect.locator()
		if err != nil {
			return nil, err
		}
		if e.FromRect == nil {
			return effect.BoundsTo(to), nil
		}
		from, err := e.FromRect.locator()
		if err != nil {
			return nil, err
		}
		return effect.BoundsFrom(from, to), nil
	case "walk":
		r, err := e.Rect.locator()
		if err != nil {
			return nil, err
		}
		dir, err := locate.ParseDirection(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		start, err := corner(e.StartCorner)
		if err != nil {
			return nil, err
		}
		align, err := corner(e.Align)
		if err != nil {
			return nil, err
		}
		return effect.RectangleWalk(r, dir, start, align), nil
	case "path":
		if len(e.Points) == 0 {
			return nil, fmt.Errorf("%w: path needs points", ErrInvalid)
		}
		align, err := corner(e.Align)
		if err != nil {
			return nil, err
		}
		points := make([]image.Point, len(e.Points))
		for i, p := range e.Points {
			points[i] = image.Pt(p[0], p[1])
		}
		return effect.PointWalk(points, align), nil
	case "morph":
		return effect.MorphTo(e.Text), nil
	case "tint":
		if len(e.Gradient) == 0 {
			c, err := parseColour(e.Colour)
			if err != nil {
				return nil, err
			}
			return effect.TintTo(c), nil
		}
		stops := make([]interp.Stop, len(e.Gradient))
		for i, s := range e.Gradient {
			c, err := parseColour(s.Colour)
			if err != nil {
				return nil, err
			}
			stops[i] = interp.Stop{Pos: s.Pos, Color: c}
		}
		return effect.TintThrough(interp.NewGradient(stops...)), nil
	case "blink":
		p := e.Phases
		if p == [4]float64{} {
			p = [4]float64{1, 1, 1, 1}
		}
		return effect.NewBlink(p[0], p[1], p[2], p[3]), nil
	}
	return nil, fmt.Errorf("%w: unknown effect type %q", ErrInvalid, e.Type)
}

func (p *Point) locator() (locate.PointLocator, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: missing point", ErrInvalid)
	}
	offset := image.Pt(p.Offset[0], p.Offset[1])

	var loc locate.PointLocator
	switch {
	case p.At != nil:
		loc = locate.At(image.Pt(p.At[0], p.At[1]).Add(offset))
	case p.Corner != "":
		c, err := corner(p.Corner)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(p.Of) {
		case "", "animation":
			loc = locate.AnimationCorner(c, offset)
		case "sprite":
			loc = locate.SpriteCorner(c, offset)
		default:
			return nil, fmt.Errorf("%w: corner of %q", ErrInvalid, p.Of)
		}
	case p.Proportion != nil:
		loc = locate.Proportion(p.Proportion[0], p.Proportion[1], offset)
	default:
		return nil, fmt.Errorf("%w: point needs at, corner or proportion", ErrInvalid)
	}

	if p.Align != "" {
		c, err := corner(p.Align)
		if err != nil {
			return nil, err
		}
		loc = locate.Aligned(loc, c)
	}
	return loc, nil
}

func (r *Rect) locator() (locate.RectLocator, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: missing rect", ErrInvalid)
	}
	offset := image.Pt(r.Offset[0], r.Offset[1])
	switch {
	case r.Bounds != nil:
		return locate.Fixed(rect(*r.Bounds).Add(offset)), nil
	case r.Corner != "":
		c, err := corner(r.Corner)
		if err != nil {
			return nil, err
		}
		return locate.CornerRect(c, image.Pt(r.Size[0], r.Size[1]), offset), nil
	case r.Inset != nil:
		return locate.AnimationBounds(*r.Inset), nil
	}
	return locate.AnimationBounds(0), nil
}

func corner(s string) (locate.Corner, error) {
	c, err := locate.ParseCorner(s)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return c, nil
}
