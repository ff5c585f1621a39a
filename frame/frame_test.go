package frame

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestBlend(t *testing.T) {
	f := NewFrame(4, 2)
	if got := f.Bounds(); got != image.Rect(0, 0, 4, 2) {
		t.Errorf("Expected 4x2 bounds, got %v", got)
	}

	f.Blend(1, 1, color.NRGBA{R: 0xff, A: 0xff})
	if c := f.At(1, 1).Color; c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("Expected opaque red, got %v", c)
	}

	f.Blend(1, 1, color.NRGBA{B: 0xff, A: 0x80})
	c := f.At(1, 1).Color
	if !near(c.R, 0.5) || !near(c.B, 0.5) {
		t.Errorf("Expected half red half blue, got %v", c)
	}

	f.Blend(2, 0, color.NRGBA{G: 0xff})
	if c := f.At(2, 0).Color; c != (colorful.Color{}) {
		t.Errorf("Expected transparent colour ignored, got %v", c)
	}

	// Outside the frame nothing happens.
	f.Blend(-1, 0, color.White)
	f.Blend(4, 0, color.White)
	f.SetRune(0, 2, 'x', color.White)
	if got := f.At(9, 9); got != (Cell{}) {
		t.Errorf("Expected empty cell outside, got %v", got)
	}
}

func TestSetRuneKeepsBackground(t *testing.T) {
	f := NewFrame(2, 1)
	bg, _ := colorful.Hex("#100505")
	f.Fill(bg)
	f.SetRune(0, 0, 'A', color.White)

	cell := f.At(0, 0)
	if cell.Rune != 'A' || cell.Color != bg {
		t.Errorf("Unexpected cell %+v", cell)
	}
	if cell.Pixel() != (colorful.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("Expected rune colour as pixel, got %v", cell.Pixel())
	}
	if f.At(1, 0).Pixel() != bg {
		t.Errorf("Expected background as pixel, got %v", f.At(1, 0).Pixel())
	}
}

func TestMarshalBinary(t *testing.T) {
	f := NewFrame(3, 2)
	f.Blend(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	f.Blend(2, 1, color.NRGBA{G: 0x80, B: 0xff, A: 0xff})

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if len(data) != 2+6*3 {
		t.Fatalf("Expected 20 bytes, got %d", len(data))
	}
	if n := binary.LittleEndian.Uint16(data); n != 6 {
		t.Errorf("Expected pixel count 6, got %d", n)
	}
	if data[2] != 0xff || data[3] != 0 || data[4] != 0 {
		t.Errorf("Expected first pixel red, got %v", data[2:5])
	}
	if last := data[len(data)-3:]; last[0] != 0 || last[1] != 0x80 || last[2] != 0xff {
		t.Errorf("Expected last pixel %v, got %v", []byte{0, 0x80, 0xff}, last)
	}

	if _, err := NewFrame(300, 300).MarshalBinary(); err != ErrTooLarge {
		t.Errorf("Expected ErrTooLarge, got %v", err)
	}
}

func TestInterpolateFrame(t *testing.T) {
	a := NewFrame(2, 1)
	b := NewFrame(2, 1)
	red, _ := colorful.Hex("#ff0000")
	blue, _ := colorful.Hex("#0000ff")
	a.Fill(red)
	b.Fill(blue)
	b.SetRune(1, 0, 'z', color.White)

	start := a.InterpolateFrame(b, 0)
	if !near(start.At(0, 0).Color.R, 1) {
		t.Errorf("Expected red at the start, got %v", start.At(0, 0).Color)
	}
	end := a.InterpolateFrame(b, 1)
	if !near(end.At(0, 0).Color.B, 1) || !near(end.At(0, 0).Color.R, 0) {
		t.Errorf("Expected blue at the end, got %v", end.At(0, 0).Color)
	}
	if end.At(1, 0).Rune != 'z' {
		t.Error("Expected runes taken from the newer frame")
	}
}
