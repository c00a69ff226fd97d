package sampler

import "github.com/go-gl/mathgl/mgl64"

// Sampler draws points uniformly from the square [-1, 1) x [-1, 1).
type Sampler struct {
	src Source
}

func New(src Source) *Sampler {
	return &Sampler{src: src}
}

// Next draws x then y from the source and maps both from [0, 1) onto [-1, 1).
func (s *Sampler) Next() mgl64.Vec2 {
	x := s.src.Float64()
	y := s.src.Float64()
	return mgl64.Vec2{2*x - 1, 2*y - 1}
}

// Inside reports whether p lies in the closed unit disk.
func Inside(p mgl64.Vec2) bool {
	return p.LenSqr() <= 1
}
