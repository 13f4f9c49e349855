package calculator

import "math"

// epsilon replaces zero denominators in ratio-based indicators so a flat
// bar or empty window degrades to a finite value instead of Inf/NaN.
const epsilon = 0.001

// safeDiv divides a by b, substituting epsilon when b is zero.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return a / epsilon
	}
	return a / b
}

// nans returns a slice of length n filled with NaN.
func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// Last returns the final value of a series, or NaN for an empty one.
func Last(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

// Prev returns the second-to-last value of a series, or NaN.
func Prev(series []float64) float64 {
	if len(series) < 2 {
		return math.NaN()
	}
	return series[len(series)-2]
}
