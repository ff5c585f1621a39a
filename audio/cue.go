// Package audio provides sound cues that can be scheduled on an animation.
package audio

import (
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// Source opens a fresh stream each time a cue starts.
type Source func() (beep.Streamer, error)

// Player plays a stream to its end, or until the stream reports it is drained,
// and only then returns.
type Player interface {
	Play(s beep.Streamer)
}

// Cue is an animation component that plays a sound in the background. The
// animation is never blocked by playback; ticks just poll whether the sound is
// still going. Pausing the animation does not pause the sound.
type Cue struct {
	source Source
	player Player
	log    *log.Logger

	mu      sync.Mutex
	current *playback
}

type playback struct {
	stream *stoppable
	done   atomic.Bool
	exited chan struct{}
}

// NewCue creates a cue that plays streams from source on player.
func NewCue(source Source, player Player) *Cue {
	c := new(Cue)
	c.source = source
	c.player = player
	c.log = log.Default()
	return c
}

// SetLogger replaces the logger used to report source failures.
func (c *Cue) SetLogger(l *log.Logger) {
	c.log = l
}

// Start opens the source and hands it to a worker goroutine. A source that
// fails to open leaves the cue finished.
func (c *Cue) Start() {
	p := &playback{exited: make(chan struct{})}

	c.mu.Lock()
	c.current = p
	c.mu.Unlock()

	s, err := c.source()
	if err != nil {
		c.log.Printf("Unable to open sound: %v", err)
		p.done.Store(true)
		close(p.exited)
		return
	}
	p.stream = &stoppable{Streamer: s}

	go func() {
		defer close(p.exited)
		c.player.Play(p.stream)
		if closer, ok := s.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				c.log.Printf("Unable to close sound: %v", err)
			}
		}
		p.done.Store(true)
	}()
}

// Tick reports whether the sound is still playing.
func (c *Cue) Tick(time.Duration) bool {
	p := c.playing()
	return p != nil && !p.done.Load()
}

// Stop asks the worker to finish and returns straight away. The source is
// released by the worker once the player lets go of it.
func (c *Cue) Stop() {
	if p := c.playing(); p != nil && p.stream != nil {
		p.stream.stop()
	}
}

// Reset stops any playback and re-arms the cue so the next Start plays the
// sound from the beginning.
func (c *Cue) Reset() {
	c.Stop()
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

// Wait blocks until the worker of the current playback has exited.
func (c *Cue) Wait() {
	if p := c.playing(); p != nil {
		<-p.exited
	}
}

func (c *Cue) playing() *playback {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// stoppable ends the wrapped stream early once stop is called.
type stoppable struct {
	beep.Streamer
	stopped atomic.Bool
}

func (s *stoppable) Stream(samples [][2]float64) (int, bool) {
	if s.stopped.Load() {
		return 0, false
	}
	return s.Streamer.Stream(samples)
}

func (s *stoppable) stop() {
	s.stopped.Store(true)
}
