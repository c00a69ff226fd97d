package pmath

import "math"

// Sum ...
func Sum(nums []float64) (result float64) {
	for _, v := range nums {
		result += v
	}
	return result
}

// Mean ...
func Mean(nums []float64) float64 {
	count := float64(len(nums))
	if count == 0 {
		return 0
	}
	return Sum(nums) / count
}

// Variance returns the population variance of nums.
func Variance(nums []float64) (variance float64) {
	count := float64(len(nums))
	if count == 0 {
		return 0.0
	}
	mean := Sum(nums) / count

	for _, number := range nums {
		variance += math.Pow(number-mean, 2)
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(nums []float64) float64 {
	return math.Sqrt(Variance(nums))
}

// BinomialStandardError returns the standard error of the proportion hits/n, scaled by scale. It returns 0 for
// n == 0; callers guard that case themselves.
func BinomialStandardError(hits, n uint64, scale float64) float64 {
	if n == 0 {
		return 0
	}
	p := float64(hits) / float64(n)
	return scale * math.Sqrt(p*(1-p)/float64(n))
}
