// Package render turns tile colors into RGBA pixel buffers.
package render

import "image/color"

// PixelOffset returns the byte offset in a row-major RGBA buffer of the tile
// with flattened index i on a grid of width w and depth d. Tile x maps to the
// image column and y to the image row.
func PixelOffset(i, w, d int) int {
	x, y := i/d, i%d
	return (y*w + x) * 4
}

// Frame is an RGBA pixel buffer for a w x d tile grid.
type Frame struct {
	W, D int
	Pix  []byte
}

// NewFrame allocates a transparent frame.
func NewFrame(w, d int) *Frame {
	if w < 0 {
		w = 0
	}
	if d < 0 {
		d = 0
	}
	return &Frame{W: w, D: d, Pix: make([]byte, 4*w*d)}
}

// Fill repaints every tile using colorOf.
func (f *Frame) Fill(colorOf func(i int) color.RGBA) {
	if f.D == 0 {
		return
	}
	for i := 0; i < f.W*f.D; i++ {
		f.set(i, colorOf(i))
	}
}

// Apply repaints only the tiles in changes. Indices outside the frame are
// ignored.
func (f *Frame) Apply(changes map[int]color.RGBA) {
	for i, c := range changes {
		if i < 0 || i >= f.W*f.D {
			continue
		}
		f.set(i, c)
	}
}

// At returns the color of tile i.
func (f *Frame) At(i int) color.RGBA {
	if i < 0 || i >= f.W*f.D {
		return color.RGBA{}
	}
	base := PixelOffset(i, f.W, f.D)
	return color.RGBA{R: f.Pix[base], G: f.Pix[base+1], B: f.Pix[base+2], A: f.Pix[base+3]}
}

func (f *Frame) set(i int, c color.RGBA) {
	base := PixelOffset(i, f.W, f.D)
	f.Pix[base+0] = c.R
	f.Pix[base+1] = c.G
	f.Pix[base+2] = c.B
	f.Pix[base+3] = c.A
}
