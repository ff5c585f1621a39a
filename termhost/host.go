// Package termhost shows an animation in a terminal.
package termhost

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/control"
	"github.com/matt-g-everett/sparkle/frame"
)

// Host draws an animation on a tcell screen. The animation is sized to the
// screen and follows it when the terminal is resized.
//
// Keys: Esc, q or Ctrl-C stop the animation and quit, space toggles pause and
// r restarts.
type Host struct {
	screen     tcell.Screen
	controller *control.Controller
	background colorful.Color
}

// NewHost creates a Host on screen. The screen is initialised by Run.
func NewHost(screen tcell.Screen, a *anim.Animation, background colorful.Color) *Host {
	h := new(Host)
	h.screen = screen
	h.controller = control.NewController(a)
	h.background = background
	h.attach(a)
	return h
}

// Controller exposes the controller that key presses go through.
func (h *Host) Controller() *control.Controller {
	return h.controller
}

// Replace shows a instead of the current animation, which is stopped.
func (h *Host) Replace(a *anim.Animation) {
	w, ht := h.screen.Size()
	a.SetBounds(image.Rect(0, 0, w, ht))
	h.attach(a)
	h.controller.Replace(a)
	h.requestPaint()
}

// attach asks the event loop to paint whenever a wants a redraw.
func (h *Host) attach(a *anim.Animation) {
	a.OnRedraw(h.requestPaint)
}

func (h *Host) requestPaint() {
	// A full queue already holds a pending paint.
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run initialises the screen and handles events until the user quits.
func (h *Host) Run() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer h.screen.Fini()
	h.loop()
	return nil
}

func (h *Host) loop() {
	w, ht := h.screen.Size()
	h.controller.Animation().SetBounds(image.Rect(0, 0, w, ht))
	h.paint()

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		if !h.handle(ev) {
			h.controller.Apply(control.Command{Type: "stop"})
			return
		}
	}
}

// handle reacts to one event and returns false when it is time to quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.controller.Animation().SetBounds(image.Rect(0, 0, w, ht))
		h.screen.Sync()
		h.paint()
	case *tcell.EventInterrupt:
		h.paint()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				cmd := "pause"
				if h.controller.Animation().Paused() {
					cmd = "unpause"
				}
				h.controller.Apply(control.Command{Type: cmd})
			case 'r':
				h.controller.Apply(control.Command{Type: "restart"})
			}
		}
	}
	return true
}

func (h *Host) paint() {
	w, ht := h.screen.Size()
	f := frame.NewFrame(w, ht)
	f.Fill(h.background)
	h.controller.Animation().Draw(f)

	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			cell := f.At(x, y)
			style := tcell.StyleDefault.Background(rgb(cell.Color))
			r := ' '
			if cell.Rune != 0 {
				r = cell.Rune
				style = style.Foreground(rgb(cell.Fg))
			}
			h.screen.SetContent(x, y, r, nil, style)
		}
	}
	h.screen.Show()
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
