package canvas

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/samber/lo"
)

// Palette cycles the inside and outside colours a little on every painted batch, so that successive batches
// stay distinguishable on screen.
type Palette struct {
	phase float32
	speed float32
}

// NewPalette returns a palette that advances its phase by speed radians per batch.
func NewPalette(speed float32) *Palette {
	return &Palette{speed: speed}
}

// Inside returns the current colour for points inside the circle: blues with a shifting green component.
func (p *Palette) Inside() color.RGBA {
	return color.RGBA{
		R: 0,
		G: wave(p.phase, 0, 155),
		B: wave(p.phase*0.7, 200, 255),
		A: 0xff,
	}
}

// Outside returns the current colour for points outside the circle: reds with a shifting green component.
func (p *Palette) Outside() color.RGBA {
	return color.RGBA{
		R: wave(p.phase*0.7, 200, 255),
		G: wave(p.phase+math32.Pi, 0, 155),
		B: 0,
		A: 0xff,
	}
}

// Advance moves the palette one batch forward.
func (p *Palette) Advance() {
	p.phase = math32.Mod(p.phase+p.speed, 2*math32.Pi)
}

func (p *Palette) Reset() {
	p.phase = 0
}

// wave maps sin(phase) onto [lo, hi].
func wave(phase, low, high float32) uint8 {
	v := low + (high-low)*(math32.Sin(phase)+1)/2
	return uint8(lo.Clamp(math32.Round(v), 0, 255))
}
