package pmath

import (
	"math"
)

// Round will round a number down to a given precision.
func Round(val float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Trunc(val*p) / p
}

// LogStep returns floor(ln(n+3)), which is at least 1 for every n.
func LogStep(n uint64) uint64 {
	return uint64(math.Log(float64(n) + 3))
}
