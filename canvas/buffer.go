package canvas

import (
	"image"
	"image/color"
	"iter"
)

// Buffer is a software RGBA canvas. It implements the simulation renderer contract: it paints
// classifications, clears to white and keeps a copy of itself when a snapshot is requested.
type Buffer struct {
	img     *image.RGBA
	palette *Palette

	snapshot   *image.RGBA
	onSnapshot func(*image.RGBA)
}

// NewBuffer returns a white width x height canvas with 4 bytes per pixel.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		palette: NewPalette(0.05),
	}
	b.Clear()
	return b
}

// OnSnapshot registers f to be called with every snapshot taken.
func (b *Buffer) OnSnapshot(f func(*image.RGBA)) {
	b.onSnapshot = f
}

func (b *Buffer) Geometry() Geometry {
	return Geometry{
		Width:         b.img.Rect.Dx(),
		Height:        b.img.Rect.Dy(),
		Stride:        b.img.Stride,
		BytesPerPixel: 4,
	}
}

// Paint colours the pixel of every classification in seq.
func (b *Buffer) Paint(seq iter.Seq[Classification]) {
	in, out := b.palette.Inside(), b.palette.Outside()
	for c := range seq {
		col := out
		if c.Inside {
			col = in
		}
		b.set(c.Offset, col)
	}
	b.palette.Advance()
}

func (b *Buffer) set(off uint32, col color.RGBA) {
	px := b.img.Pix[off : off+4 : off+4]
	px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
}

// Clear paints the whole canvas white and restarts the colour cycle.
func (b *Buffer) Clear() {
	for i := range b.img.Pix {
		b.img.Pix[i] = 0xff
	}
	b.palette.Reset()
}

// Snapshot copies the current canvas.
func (b *Buffer) Snapshot() {
	cp := image.NewRGBA(b.img.Rect)
	copy(cp.Pix, b.img.Pix)
	b.snapshot = cp
	if b.onSnapshot != nil {
		b.onSnapshot(cp)
	}
}

// LastSnapshot returns the most recent snapshot, or nil if none was taken.
func (b *Buffer) LastSnapshot() *image.RGBA {
	return b.snapshot
}

// Image returns the live canvas. It must not be read while a Paint call is in progress.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}
