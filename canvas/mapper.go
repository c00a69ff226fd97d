package canvas

import (
	"math"

	"github.com/picarlo/picarlo/assert"
	"github.com/samber/lo"
)

// MapToPixel maps a point of [-1, 1] x [-1, 1] to the byte offset of its pixel in g. Grid coordinates are
// clamped to the canvas, so x or y equal to 1 land on the last column or row. MapToPixel panics on a
// zero-area geometry or an offset that does not fit 32 bits; Geometry.Validate rejects both up front.
func MapToPixel(x, y float64, g Geometry) uint32 {
	assert.IsTrue(g.Width > 0 && g.Height > 0, "canvas: cannot map onto a %dx%d canvas", g.Width, g.Height)

	gridX := gridIndex(x, g.Width)
	gridY := gridIndex(y, g.Height)
	off := uint64(gridY)*uint64(g.Stride) + uint64(gridX)*uint64(g.BytesPerPixel)
	assert.IsTrue(off <= math.MaxUint32, "canvas: offset %d of a %dx%d canvas exceeds 32 bits", off, g.Width, g.Height)
	return uint32(off)
}

func gridIndex(v float64, dim int) int {
	i := math.Floor(((v + 1) / 2) * float64(dim))
	if math.IsNaN(i) {
		return 0
	}
	return int(lo.Clamp(i, 0, float64(dim-1)))
}
