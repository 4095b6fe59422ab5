package util

import "math"

// CeilFraction returns ceil(n * ratio) computed on integers so that values
// such as 10*0.3 do not round up because of floating point error.
func CeilFraction(n, numerator, denominator int) int {
	if n <= 0 || numerator <= 0 || denominator <= 0 {
		return 0
	}
	return (n*numerator + denominator - 1) / denominator
}

// ClampScore rounds v and limits it to the 0-100 score range.
func ClampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}
