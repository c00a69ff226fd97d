package batch

import (
	"math"

	"github.com/picarlo/picarlo/pmath"
)

// DefaultCeiling is half the counter range, leaving the other half as headroom for the sample counters.
const DefaultCeiling uint64 = math.MaxUint64 >> 1

// Sizer decides how many samples are drawn on each tick.
type Sizer interface {
	// Next is called once per tick and returns that tick's batch size.
	Next() uint64
	// Peek returns the current batch size without advancing.
	Peek() uint64
	// NextStep returns how much the following call to Next may grow the batch size.
	NextStep() uint64
	Reset()
}

// Controller grows the batch size by floor(ln(size+3)) per tick until the next step would pass its ceiling.
type Controller struct {
	current   uint64
	threshold uint64
	ceiling   uint64
}

// NewController returns a Controller starting at batch size 1. A ceiling of 0 selects DefaultCeiling, and
// larger ceilings are lowered to it.
func NewController(ceiling uint64) *Controller {
	if ceiling == 0 {
		ceiling = DefaultCeiling
	}
	ceiling = min(ceiling, DefaultCeiling)
	c := &Controller{ceiling: ceiling}
	c.Reset()
	return c
}

// Next applies at most one growth step and returns the resulting batch size.
func (c *Controller) Next() uint64 {
	if c.current > c.threshold {
		c.threshold = c.current
		if step := pmath.LogStep(c.current); c.fits(step) {
			c.current += step
		}
	}
	return c.current
}

func (c *Controller) Peek() uint64 {
	return c.current
}

// NextStep returns the growth the next call to Next would apply, or 0 if the controller is frozen.
func (c *Controller) NextStep() uint64 {
	if c.current <= c.threshold {
		return 0
	}
	step := pmath.LogStep(c.current)
	if !c.fits(step) {
		return 0
	}
	return step
}

func (c *Controller) fits(step uint64) bool {
	return step <= c.ceiling && c.current <= c.ceiling-step
}

func (c *Controller) Ceiling() uint64 {
	return c.ceiling
}

func (c *Controller) Reset() {
	c.current, c.threshold = 1, 0
}

// Fixed is a Sizer that always returns the same batch size.
type Fixed uint64

func (f Fixed) Next() uint64   { return uint64(f) }
func (f Fixed) Peek() uint64   { return uint64(f) }
func (Fixed) NextStep() uint64 { return 0 }
func (Fixed) Reset()           {}

var (
	_ Sizer = (*Controller)(nil)
	_ Sizer = Fixed(0)
)
