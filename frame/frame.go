// Package frame provides the cell grid that animations are drawn onto before a
// host shows it.
package frame

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrTooLarge is returned when a frame has more cells than the wire format can count.
var ErrTooLarge = errors.New("frame too large to encode")

// Cell is one position of a Frame. A cell with a rune shows the rune in Fg over
// Color; otherwise it is a block of Color.
type Cell struct {
	Color colorful.Color
	Rune  rune
	Fg    colorful.Color
}

// Pixel is the single colour the cell shows on a device without characters.
func (c Cell) Pixel() colorful.Color {
	if c.Rune != 0 {
		return c.Fg
	}
	return c.Color
}

// Frame is a width x height grid of cells in row-major order.
type Frame struct {
	width, height int
	cells         []Cell
}

// NewFrame creates a black frame.
func NewFrame(width, height int) *Frame {
	f := new(Frame)
	f.width = max(width, 0)
	f.height = max(height, 0)
	f.cells = make([]Cell, f.width*f.height)
	return f
}

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At returns the cell at (x, y), or an empty cell outside the frame.
func (f *Frame) At(x, y int) Cell {
	if i, ok := f.index(x, y); ok {
		return f.cells[i]
	}
	return Cell{}
}

// Fill paints every cell c and clears any runes.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.cells {
		f.cells[i] = Cell{Color: c}
	}
}

// Blend composites c over the cell at (x, y) using the alpha of c.
func (f *Frame) Blend(x, y int, c color.Color) {
	i, ok := f.index(x, y)
	if !ok {
		return
	}
	src, alpha := split(c)
	if alpha <= 0 {
		return
	}
	f.cells[i].Color = f.cells[i].Color.BlendRgb(src, alpha)
}

// SetRune writes r in colour c at (x, y). The background stays as it is.
func (f *Frame) SetRune(x, y int, r rune, c color.Color) {
	i, ok := f.index(x, y)
	if !ok {
		return
	}
	src, _ := split(c)
	f.cells[i].Rune = r
	f.cells[i].Fg = src
}

// InterpolateFrame merges two frames of the same size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.width, f.height)
	for i := range out.cells {
		if i >= len(f2.cells) {
			out.cells[i] = f.cells[i]
			continue
		}
		out.cells[i] = f2.cells[i]
		out.cells[i].Color = f.cells[i].Color.BlendHcl(f2.cells[i].Color, transitionPoint).Clamped()
	}

	return out
}

// MarshalBinary converts a Frame into the LED stream format: a little endian
// uint16 pixel count followed by one RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	n := len(f.cells)
	if n > 0xffff {
		return nil, ErrTooLarge
	}
	data = make([]byte, 2, (n*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(n))
	for _, c := range f.cells {
		r, g, b := c.Pixel().Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

func (f *Frame) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, false
	}
	return y*f.width + x, true
}

// split separates c into an opaque colour and its alpha in [0, 1].
func split(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	opaque := colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
	return opaque, float64(n.A) / 255
}
