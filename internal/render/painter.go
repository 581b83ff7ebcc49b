//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a Frame into a single image and draws it scaled.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*d.
func NewGridPainter(w, d int) *GridPainter {
	return &GridPainter{frame: NewFrame(w, d), img: ebiten.NewImage(w, d)}
}

// Frame exposes the pixel buffer the painter uploads.
func (gp *GridPainter) Frame() *Frame { return gp.frame }

// Blit uploads the frame and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.frame.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.frame.W, gp.frame.D }
