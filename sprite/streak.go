package sprite

import (
	"container/list"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/sparkle/anim"
)

// StreakStep is how often streaks move and a Streak rolls for a new one.
const StreakStep = 33 * time.Millisecond

type streakParticle struct {
	row       int
	current   float64
	increment float64
	length    float64
	gainRate  float64
}

func (p *streakParticle) incrementPosition(width float64) bool {
	p.current += p.increment
	return p.current <= width && p.easeDistance() <= 2
}

func (p *streakParticle) easeDistance() float64 {
	return (p.current + p.length) * p.gainRate
}

// gain rises to full across the first half of the run and falls away across
// the second.
func (p *streakParticle) gain() float64 {
	d := p.easeDistance()
	if d > 2 || d < 0 {
		return 0
	} else if d > 1 {
		d = 2 - d
	}
	return ease.InOutQuad(d)
}

// Streak sends streaks of colour along the rows of its bounds, fading in and
// out as they cross.
type Streak struct {
	Base
	colour colorful.Color
	length int
	speed  float64
	chance int
	seed   int64

	rng       *rand.Rand
	particles *list.List
	steps     int64
}

// NewStreak creates a Streak over bounds. Streaks are length cells long and
// move speed cells every StreakStep. A new one starts with a one in chance
// probability every StreakStep.
func NewStreak(bounds image.Rectangle, colour colorful.Color, length int, speed float64, chance int) *Streak {
	s := new(Streak)
	s.Init(s, bounds)
	s.colour = colour
	s.length = max(length, 1)
	s.speed = speed
	if s.speed <= 0 {
		s.speed = 0.2
	}
	s.chance = max(chance, 1)
	s.SetSeed(time.Now().UnixNano())
	return s
}

// SetSeed makes the streaks repeatable.
func (s *Streak) SetSeed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.particles = list.New()
	s.steps = 0
}

// Tick runs the effects and then catches the streaks up to elapsed.
func (s *Streak) Tick(elapsed time.Duration) bool {
	more := s.Base.Tick(elapsed)
	for due := int64(elapsed / StreakStep); s.steps < due; s.steps++ {
		s.step()
	}
	return more
}

// Reset undoes the effects and replays the same streaks next time.
func (s *Streak) Reset() {
	s.Base.Reset()
	s.SetSeed(s.seed)
}

func (s *Streak) Draw(c anim.Canvas) {
	opacity := clampUnit(s.opacity)
	if opacity <= 0 {
		return
	}
	r, g, b := s.colour.Clamped().RGB255()

	bounds := s.bounds
	area := bounds.Intersect(c.Bounds())
	for e := s.particles.Front(); e != nil; e = e.Next() {
		p := e.Value.(*streakParticle)
		y := bounds.Min.Y + p.row
		if y < area.Min.Y || y >= area.Max.Y {
			continue
		}
		alpha := uint8(opacity*p.gain()*255 + 0.5)
		if alpha == 0 {
			continue
		}
		start := int(math.Ceil(p.current))
		end := int(math.Floor(p.current + p.length))
		for i := start; i <= end; i++ {
			x := bounds.Min.X + i
			if x >= area.Min.X && x < area.Max.X {
				c.Blend(x, y, color.NRGBA{R: r, G: g, B: b, A: alpha})
			}
		}
	}
}

func (s *Streak) step() {
	size := s.bounds.Size()
	width := float64(size.X)

	toDelete := make([]*list.Element, 0, s.particles.Len())
	for e := s.particles.Front(); e != nil; e = e.Next() {
		if !e.Value.(*streakParticle).incrementPosition(width) {
			toDelete = append(toDelete, e)
		}
	}
	for _, e := range toDelete {
		s.particles.Remove(e)
	}

	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if s.rng.Intn(s.chance) == 0 {
		length := float64(s.length)
		s.particles.PushBack(&streakParticle{
			row:       s.rng.Intn(size.Y),
			current:   -length,
			increment: s.speed,
			length:    length,
			gainRate:  2 / (width + length),
		})
	}
}
