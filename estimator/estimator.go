package estimator

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/picarlo/picarlo/perror"
	"github.com/picarlo/picarlo/pmath"
	"github.com/picarlo/picarlo/sampler"
)

// Estimator counts samples and the samples that fell inside the unit circle. The zero value is ready to use.
type Estimator struct {
	total  uint64
	inside uint64
}

// Record counts one sample, and one inside sample if inside is true.
func (e *Estimator) Record(inside bool) {
	e.total++
	if inside {
		e.inside++
	}
}

// Classify tests p against the unit circle, records the result and returns it.
func (e *Estimator) Classify(p mgl64.Vec2) bool {
	inside := sampler.Inside(p)
	e.Record(inside)
	return inside
}

// Estimate returns 4 * inside / total, or perror.ErrDivisionByZero if nothing was recorded yet.
func (e *Estimator) Estimate() (float64, error) {
	if e.total == 0 {
		return 0, perror.ErrDivisionByZero
	}
	return 4 * float64(e.inside) / float64(e.total), nil
}

// StandardError returns the standard error of the current estimate.
func (e *Estimator) StandardError() (float64, error) {
	if e.total == 0 {
		return 0, perror.ErrDivisionByZero
	}
	return pmath.BinomialStandardError(e.inside, e.total, 4), nil
}

func (e *Estimator) Total() uint64  { return e.total }
func (e *Estimator) Inside() uint64 { return e.inside }

// Headroom returns how many more samples can be recorded before the counters wrap.
func (e *Estimator) Headroom() uint64 {
	return math.MaxUint64 - e.total
}

func (e *Estimator) Reset() {
	e.total, e.inside = 0, 0
}
