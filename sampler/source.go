package sampler

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/zeebo/xxh3"
)

// Source is a stream of independent uniform reals in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a PCG backed Source. The same seed always yields the same stream.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromString derives a seed from a label such as "demo-run". An empty label is replaced by the current
// time, making the run non-reproducible.
func SeedFromString(label string) uint64 {
	if label == "" {
		label = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return xxh3.HashString(label)
}

// Replay is a Source that returns a fixed sequence of values, starting over once exhausted.
type Replay struct {
	values []float64
	pos    int
}

func NewReplay(values ...float64) *Replay {
	return &Replay{values: values}
}

func (r *Replay) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.pos]
	r.pos = (r.pos + 1) % len(r.values)
	return v
}
