package sprite

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/interp"
)

// TwinkleStep is how often a Twinkle rolls for new scintillations.
const TwinkleStep = 33 * time.Millisecond

const peakLuminance = 0.6

type particle struct {
	lut     []float64
	current int
	running bool
	colour  colorful.Color
	next    colorful.Color
}

func (p *particle) increment() {
	if !p.running {
		return
	}
	p.current++
	if p.current > len(p.lut)/2 {
		p.colour = p.next
	}
	if p.current >= len(p.lut)-1 {
		p.current = 0
		p.running = false
	}
}

func (p *particle) currentColour() colorful.Color {
	if !p.running {
		return p.colour
	}
	gain := p.lut[p.current]
	h, c, l := p.colour.Hcl()

	// Brighten toward the peak
	return colorful.Hcl(h, c, l+(peakLuminance-l)*gain).Clamped()
}

// Twinkle fills its bounds with cells in palette colours that scintillate at
// random, brightening and fading back, sometimes to a different colour.
type Twinkle struct {
	Base
	palette []colorful.Color
	chance  int
	seed    int64

	rng       *rand.Rand
	particles []*particle
	size      image.Point
	steps     int64
	luts      map[int][]float64
}

// NewTwinkle creates a Twinkle over bounds. Each cell starts a scintillation with
// a one in chance probability every TwinkleStep.
func NewTwinkle(bounds image.Rectangle, palette []colorful.Color, chance int) *Twinkle {
	t := new(Twinkle)
	t.Init(t, bounds)
	if len(palette) == 0 {
		palette = []colorful.Color{{R: 0.25, G: 0.25, B: 0.25}}
	}
	t.palette = palette
	t.chance = max(chance, 1)
	t.luts = make(map[int][]float64)
	t.SetSeed(time.Now().UnixNano())
	return t
}

// SetSeed makes the scintillations repeatable.
func (t *Twinkle) SetSeed(seed int64) {
	t.seed = seed
	t.rng = rand.New(rand.NewSource(seed))
	t.particles = nil
	t.steps = 0
}

// Tick runs the effects and then catches the particles up to elapsed.
func (t *Twinkle) Tick(elapsed time.Duration) bool {
	more := t.Base.Tick(elapsed)
	t.layout()
	for due := int64(elapsed / TwinkleStep); t.steps < due; t.steps++ {
		t.step()
	}
	return more
}

// Reset undoes the effects and replays the same scintillations next time.
func (t *Twinkle) Reset() {
	t.Base.Reset()
	t.SetSeed(t.seed)
}

func (t *Twinkle) Draw(c anim.Canvas) {
	t.layout()
	opacity := clampUnit(t.opacity)
	if opacity <= 0 {
		return
	}
	alpha := uint8(opacity*255 + 0.5)

	b := t.bounds
	area := b.Intersect(c.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			p := t.particles[(y-b.Min.Y)*t.size.X+(x-b.Min.X)]
			r, g, bl := p.currentColour().RGB255()
			c.Blend(x, y, color.NRGBA{R: r, G: g, B: bl, A: alpha})
		}
	}
}

// layout makes sure there is one particle per cell of the current bounds.
func (t *Twinkle) layout() {
	size := t.bounds.Size()
	if t.particles != nil && size == t.size {
		return
	}
	t.size = size
	t.particles = make([]*particle, max(size.X*size.Y, 0))
	for i := range t.particles {
		c := t.randomColour()
		t.particles[i] = &particle{colour: c, next: c}
	}
}

func (t *Twinkle) step() {
	for _, p := range t.particles {
		if t.rng.Intn(t.chance) == 0 && !p.running {
			p.running = true
			p.lut = t.lut((t.rng.Intn(18) + 6) * 2)
			p.next = t.randomColour()
		}
		p.increment()
	}
}

func (t *Twinkle) lut(length int) []float64 {
	lut, ok := t.luts[length]
	if !ok {
		lut = interp.Pulse(length, ease.InOutQuad)
		t.luts[length] = lut
	}
	return lut
}

func (t *Twinkle) randomColour() colorful.Color {
	return t.palette[t.rng.Intn(len(t.palette))]
}
