// Package control applies commands to the animation a host is showing and
// reports its status. It is shared by the MQTT control topic and the HTTP API.
package control

import (
	"errors"
	"fmt"
	"sync"

	"github.com/matt-g-everett/sparkle/anim"
)

// ErrUnknownCommand is returned for a command type the controller does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a control message sent over MQTT or HTTP.
type Command struct {
	Type string `json:"type"`
}

// BlockStatus describes one scheduled component.
type BlockStatus struct {
	Kind        string `json:"kind"`
	State       string `json:"state"`
	OffsetMs    int64  `json:"offsetMs"`
	DurationMs  int64  `json:"durationMs,omitempty"`
	StartedAtMs int64  `json:"startedAtMs,omitempty"`
}

// Status is a snapshot of the animation.
type Status struct {
	Running   bool          `json:"running"`
	Paused    bool          `json:"paused"`
	Repeat    string        `json:"repeat"`
	ElapsedMs int64         `json:"elapsedMs"`
	Blocks    []BlockStatus `json:"blocks"`
}

// Controller applies commands to an animation.
type Controller struct {
	mu        sync.Mutex
	animation *anim.Animation
}

// NewController creates an instance of a Controller.
func NewController(a *anim.Animation) *Controller {
	c := new(Controller)
	c.animation = a
	return c
}

// Animation is the animation commands currently go to.
func (c *Controller) Animation() *anim.Animation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animation
}

// Replace swaps in a and returns the animation it replaces, which is stopped.
// a is started, and paused, to match the old animation.
func (c *Controller) Replace(a *anim.Animation) *anim.Animation {
	c.mu.Lock()
	old := c.animation
	c.animation = a
	c.mu.Unlock()

	running, paused := old.Running(), old.Paused()
	old.Stop()
	if running {
		a.Start()
		if paused {
			a.Pause()
		}
	}
	return old
}

// Apply runs a single command.
func (c *Controller) Apply(cmd Command) error {
	a := c.Animation()
	switch cmd.Type {
	case "start":
		a.Start()
	case "stop":
		a.Stop()
	case "pause":
		a.Pause()
	case "unpause":
		a.Unpause()
	case "restart":
		a.Restart()
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Type)
	}
	return nil
}

// Status describes the animation as it is now.
func (c *Controller) Status() Status {
	a := c.Animation()
	s := Status{
		Running:   a.Running(),
		Paused:    a.Paused(),
		Repeat:    a.Repeat().String(),
		ElapsedMs: a.Elapsed().Milliseconds(),
	}
	for _, b := range a.Blocks() {
		s.Blocks = append(s.Blocks, BlockStatus{
			Kind:        fmt.Sprintf("%T", b.Component),
			State:       b.State.String(),
			OffsetMs:    b.Offset.Milliseconds(),
			DurationMs:  b.Duration.Milliseconds(),
			StartedAtMs: b.StartedAt.Milliseconds(),
		})
	}
	return s
}
