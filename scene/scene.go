// Package scene builds animations from YAML scene descriptions.
//
// A scene lists sprites, each with the effects that run on it, and sounds:
//
//	interval: 33ms
//	repeat: loop
//	sprites:
//	  - kind: shape
//	    bounds: [0, 0, 4, 2]
//	    colour: "#ff0000"
//	    effects:
//	      - type: move
//	        duration: 2s
//	        curve: in-out-quad
//	        to: {corner: bottom-right, align: bottom-right}
//	sounds:
//	  - tone: 440
//	    start: 1s
//	    duration: 200ms
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/audio"
	"github.com/matt-g-everett/sparkle/sprite"
)

// DefaultInterval is the tick interval of a scene that does not set one.
const DefaultInterval = 33 * time.Millisecond

// ErrInvalid is wrapped by every error about the content of a scene.
var ErrInvalid = errors.New("invalid scene")

// Scene is the decoded YAML document.
type Scene struct {
	Interval   time.Duration     `yaml:"interval"`
	Repeat     anim.RepeatPolicy `yaml:"repeat"`
	Background string            `yaml:"background"`
	Sprites    []Sprite          `yaml:"sprites"`
	Sounds     []Sound           `yaml:"sounds"`
}

// Sprite describes one sprite and its effects.
type Sprite struct {
	// Kind is shape, text, twinkle or streak.
	Kind   string `yaml:"kind"`
	Bounds [4]int `yaml:"bounds"`
	At     [2]int `yaml:"at"`
	Colour string `yaml:"colour"`
	Text   string `yaml:"text"`

	Start time.Duration `yaml:"start"`
	// Lifetime is forever, effects or a duration.
	Lifetime string `yaml:"lifetime"`

	Opacity *float64 `yaml:"opacity"`
	Scale   *float64 `yaml:"scale"`
	Spin    *float64 `yaml:"spin"`

	Palette []string `yaml:"palette"`
	Chance  int      `yaml:"chance"`
	Seed    *int64   `yaml:"seed"`
	Length  int      `yaml:"length"`
	Speed   float64  `yaml:"speed"`

	Effects []Effect `yaml:"effects"`
}

// Sound is a tone or a WAV file.
type Sound struct {
	Start    time.Duration `yaml:"start"`
	Tone     float64       `yaml:"tone"`
	Duration time.Duration `yaml:"duration"`
	File     string        `yaml:"file"`
}

// Load decodes a scene.
func Load(r io.Reader) (*Scene, error) {
	s := &Scene{Interval: DefaultInterval}
	if err := yaml.NewDecoder(r).Decode(s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return s, nil
}

// LoadFile decodes the scene at path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// BackgroundColour is the colour hosts clear to before drawing.
func (s *Scene) BackgroundColour() (colorful.Color, error) {
	if s.Background == "" {
		return colorful.Color{}, nil
	}
	c, err := colorful.Hex(s.Background)
	if err != nil {
		return c, fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	return c, nil
}

// Build creates the animation. Sounds are played on player, or left out when
// player is nil.
func (s *Scene) Build(player audio.Player) (*anim.Animation, error) {
	a := anim.NewAnimation(s.Interval)
	if err := a.SetRepeat(s.Repeat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	for i, desc := range s.Sprites {
		sp, err := desc.build()
		if err != nil {
			return nil, fmt.Errorf("sprite %d: %w", i, err)
		}
		if err := a.Add(desc.Start, sp); err != nil {
			return nil, fmt.Errorf("sprite %d: %w", i, err)
		}
	}

	if player == nil && len(s.Sounds) > 0 {
		log.Printf("No audio player, leaving out %d sounds", len(s.Sounds))
		return a, nil
	}
	for i, desc := range s.Sounds {
		src, err := desc.source()
		if err != nil {
			return nil, fmt.Errorf("sound %d: %w", i, err)
		}
		if err := a.Add(desc.Start, audio.NewCue(src, player)); err != nil {
			return nil, fmt.Errorf("sound %d: %w", i, err)
		}
	}
	return a, nil
}

func (s Sound) source() (audio.Source, error) {
	switch {
	case s.File != "":
		return audio.File(s.File), nil
	case s.Tone > 0 && s.Duration > 0:
		return audio.Tone(s.Tone, s.Duration), nil
	}
	return nil, fmt.Errorf("%w: sound needs a file or a tone with a duration", ErrInvalid)
}

func (s Sprite) build() (sprite.Sprite, error) {
	var sp sprite.Sprite
	switch strings.ToLower(s.Kind) {
	case "", "shape":
		c, err := parseColour(s.Colour)
		if err != nil {
			return nil, err
		}
		sp = sprite.NewShape(rect(s.Bounds), c)
	case "text":
		c, err := parseColour(s.Colour)
		if err != nil {
			return nil, err
		}
		sp = sprite.NewText(image.Pt(s.At[0], s.At[1]), s.Text, c)
	case "twinkle":
		palette := make([]colorful.Color, 0, len(s.Palette))
		for _, p := range s.Palette {
			c, err := colorful.Hex(p)
			if err != nil {
				return nil, fmt.Errorf("%w: palette: %v", ErrInvalid, err)
			}
			palette = append(palette, c)
		}
		t := sprite.NewTwinkle(rect(s.Bounds), palette, s.Chance)
		if s.Seed != nil {
			t.SetSeed(*s.Seed)
		}
		sp = t
	case "streak":
		c := colorful.Color{R: 1, G: 1, B: 1}
		if s.Colour != "" {
			var err error
			if c, err = colorful.Hex(s.Colour); err != nil {
				return nil, fmt.Errorf("%w: colour: %v", ErrInvalid, err)
			}
		}
		st := sprite.NewStreak(rect(s.Bounds), c, s.Length, s.Speed, s.Chance)
		if s.Seed != nil {
			st.SetSeed(*s.Seed)
		}
		sp = st
	default:
		return nil, fmt.Errorf("%w: unknown sprite kind %q", ErrInvalid, s.Kind)
	}

	if s.Opacity != nil {
		sp.SetOpacity(*s.Opacity)
	}
	if s.Scale != nil {
		sp.SetScale(*s.Scale)
	}
	if s.Spin != nil {
		sp.SetSpin(*s.Spin)
	}

	lifetime, err := parseLifetime(s.Lifetime)
	if err != nil {
		return nil, err
	}
	sp.(lifetimer).SetDuration(lifetime)

	for i, desc := range s.Effects {
		e, err := desc.build()
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		if err := sp.Add(desc.Start, desc.Duration, e); err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
	}
	return sp, nil
}

type lifetimer interface {
	SetDuration(d time.Duration)
}

func parseLifetime(s string) (time.Duration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forever":
		return sprite.Forever, nil
	case "effects":
		return sprite.UntilEffectsDone, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: lifetime %q", ErrInvalid, s)
	}
	return d, nil
}

func parseColour(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: colour: %v", ErrInvalid, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func rect(b [4]int) image.Rectangle {
	return image.Rect(b[0], b[1], b[2], b[3])
}
