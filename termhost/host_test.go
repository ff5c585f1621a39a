package termhost

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/sprite"
)

var background = colorful.Color{R: 0, G: 0, B: 0.25}

func newSimHost(t *testing.T) (*Host, tcell.SimulationScreen, *anim.Animation) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(10, 4)

	a := anim.NewAnimation(0)
	a.SetClock(anim.NewManualClock(time.Unix(0, 0)))
	a.Add(0, sprite.NewShape(image.Rect(0, 0, 2, 1), color.NRGBA{R: 0xff, A: 0xff}))
	a.Add(0, sprite.NewText(image.Pt(0, 2), "hi", color.White))
	return NewHost(screen, a, background), screen, a
}

func cellAt(screen tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	r, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return r, bg
}

func TestPaint(t *testing.T) {
	h, screen, a := newSimHost(t)
	a.Start()
	a.Tick()

	h.handle(tcell.NewEventResize(10, 4))
	if got := a.Bounds(); got != image.Rect(0, 0, 10, 4) {
		t.Errorf("Expected bounds from the resize, got %v", got)
	}

	if _, bg := cellAt(screen, 1, 0); bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red shape cell, got %v", bg)
	}
	if _, bg := cellAt(screen, 5, 0); bg != tcell.NewRGBColor(0, 0, 64) {
		t.Errorf("Expected background cell, got %v", bg)
	}

	r, _, style, _ := screen.GetContent(1, 2)
	fg, _, _ := style.Decompose()
	if r != 'i' || fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("Expected white 'i', got %q in %v", r, fg)
	}
}

func TestKeys(t *testing.T) {
	h, _, a := newSimHost(t)
	a.Start()

	if !h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !a.Paused() {
		t.Error("Expected space to pause")
	}
	h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if a.Paused() {
		t.Error("Expected a second space to resume")
	}

	if h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to quit")
	}
	if h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to quit")
	}
	if h.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl-C to quit")
	}
}

// TestRedrawRequestsPaint drives the event loop from the animation
func TestRedrawRequestsPaint(t *testing.T) {
	h, screen, a := newSimHost(t)

	done := make(chan struct{})
	go func() {
		h.loop()
		close(done)
	}()

	a.Start()
	a.Tick()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, bg := cellAt(screen, 0, 0); bg == tcell.NewRGBColor(255, 0, 0) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for the shape to be painted")
		}
		time.Sleep(time.Millisecond)
	}

	screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the loop to end on Esc")
	}
	if a.Running() {
		t.Error("Expected quitting to stop the animation")
	}
}

func TestReplace(t *testing.T) {
	h, screen, old := newSimHost(t)
	old.Start()

	next := anim.NewAnimation(0)
	next.SetClock(anim.NewManualClock(time.Unix(0, 0)))
	next.Add(0, sprite.NewShape(image.Rect(8, 3, 10, 4), color.NRGBA{G: 0xff, A: 0xff}))
	h.Replace(next)

	if got := next.Bounds(); got != image.Rect(0, 0, 10, 4) {
		t.Errorf("Expected replacement sized to the screen, got %v", got)
	}
	if old.Running() || !next.Running() {
		t.Fatal("Expected the replacement to take over")
	}

	next.Tick()
	h.paint()
	if _, bg := cellAt(screen, 9, 3); bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("Expected green replacement cell, got %v", bg)
	}
	if _, bg := cellAt(screen, 0, 0); bg != tcell.NewRGBColor(0, 0, 64) {
		t.Errorf("Expected the old shape gone, got %v", bg)
	}

	h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !next.Paused() {
		t.Error("Expected keys to control the replacement")
	}
}

func TestRequestPaintFullQueue(t *testing.T) {
	h, _, _ := newSimHost(t)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.requestPaint()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected paint requests to be dropped once the queue is full")
	}
}
