package canvas

import (
	"math"

	"github.com/picarlo/picarlo/perror"
)

// Geometry describes the memory layout of a pixel canvas. It is owned by the renderer and never changes for
// the lifetime of a canvas.
type Geometry struct {
	Width, Height int
	// Stride is the number of bytes between the starts of two consecutive rows.
	Stride        int
	BytesPerPixel int
}

// Classification is one sampled point as handed to a renderer: the byte offset of its pixel and whether it
// fell inside the unit circle.
type Classification struct {
	Offset uint32
	Inside bool
}

// Validate returns perror.ErrGeometryMismatch if points cannot be mapped onto g.
func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return perror.Wrap(perror.ErrGeometryMismatch, "zero-area canvas %dx%d", g.Width, g.Height)
	case g.BytesPerPixel <= 0:
		return perror.Wrap(perror.ErrGeometryMismatch, "%d bytes per pixel", g.BytesPerPixel)
	case g.Stride < g.Width*g.BytesPerPixel:
		return perror.Wrap(perror.ErrGeometryMismatch, "stride %d shorter than a row of %d pixels", g.Stride, g.Width)
	case uint64(g.Height-1)*uint64(g.Stride)+uint64(g.Width-1)*uint64(g.BytesPerPixel) > math.MaxUint32:
		return perror.Wrap(perror.ErrGeometryMismatch, "canvas %dx%d exceeds the offset range", g.Width, g.Height)
	}
	return nil
}

// MaxOffset returns the offset of the last pixel, the largest value MapToPixel can produce.
func (g Geometry) MaxOffset() uint32 {
	return uint32((g.Height-1)*g.Stride + (g.Width-1)*g.BytesPerPixel)
}

// Len returns the number of bytes a buffer needs to hold the canvas.
func (g Geometry) Len() int {
	return (g.Height-1)*g.Stride + g.Width*g.BytesPerPixel
}
