package timestep

import (
	"math"
	"time"

	"github.com/picarlo/picarlo/perror"
)

// Accumulator turns variable frame durations into whole fixed-size ticks. Time that does not add up to a
// full tick is carried over to the next frame.
type Accumulator struct {
	step        time.Duration
	accumulated time.Duration
}

// New returns an Accumulator with the given tick length.
func New(step time.Duration) (*Accumulator, error) {
	if step <= 0 {
		return nil, perror.Wrap(perror.ErrInvalidStep, "got %v", step)
	}
	return &Accumulator{step: step}, nil
}

// Advance adds frame to the accumulated time and returns the number of whole ticks that elapsed. Negative
// durations count as zero. The accumulated time saturates instead of wrapping.
func (a *Accumulator) Advance(frame time.Duration) int {
	if frame > 0 {
		if frame > math.MaxInt64-a.accumulated {
			a.accumulated = math.MaxInt64
		} else {
			a.accumulated += frame
		}
	}
	ticks := int(a.accumulated / a.step)
	a.accumulated %= a.step
	return ticks
}

func (a *Accumulator) Step() time.Duration        { return a.step }
func (a *Accumulator) Accumulated() time.Duration { return a.accumulated }

// Reset drops any carried-over time.
func (a *Accumulator) Reset() {
	a.accumulated = 0
}
