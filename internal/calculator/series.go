package calculator

import "math"

// CalculateSMA computes the simple moving average over the given window.
// The first window-1 values are NaN, as is any window containing NaN input
// (e.g. when averaging a series that itself has an undefined prefix).
func CalculateSMA(values []float64, window int) []float64 {
	out := nans(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// CalculateEMA computes the exponential moving average with span-derived
// smoothing (alpha = 2/(span+1)), seeded at the first value.
func CalculateEMA(values []float64, span int) []float64 {
	return emaAlpha(values, 2.0/(float64(span)+1.0))
}

func emaAlpha(values []float64, alpha float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// rollingStd computes the sample standard deviation over a rolling window,
// NaN for the unavailable prefix.
func rollingStd(values []float64, window int) []float64 {
	out := nans(len(values))
	if window <= 1 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += values[j]
		}
		mean /= float64(window)
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := values[j] - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(window-1))
	}
	return out
}

// rollingMin computes the minimum over a rolling window, NaN prefix.
func rollingMin(values []float64, window int) []float64 {
	out := nans(len(values))
	for i := window - 1; i < len(values); i++ {
		m := values[i]
		for j := i - window + 1; j < i; j++ {
			if values[j] < m {
				m = values[j]
			}
		}
		out[i] = m
	}
	return out
}

// rollingMax computes the maximum over a rolling window, NaN prefix.
func rollingMax(values []float64, window int) []float64 {
	out := nans(len(values))
	for i := window - 1; i < len(values); i++ {
		m := values[i]
		for j := i - window + 1; j < i; j++ {
			if values[j] > m {
				m = values[j]
			}
		}
		out[i] = m
	}
	return out
}

// rollingSum computes the sum over a rolling window, NaN prefix. NaN inputs
// inside the window propagate, matching the rest of the library.
func rollingSum(values []float64, window int) []float64 {
	out := nans(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum
	}
	return out
}

// CrossedAbove reports whether the fast series transitioned from below to
// at-or-above the slow series exactly on the final bar. It does not fire
// while fast merely stays above slow.
func CrossedAbove(fast, slow []float64) bool {
	n := len(fast)
	if n < 2 || len(slow) != n {
		return false
	}
	prevFast, prevSlow := fast[n-2], slow[n-2]
	curFast, curSlow := fast[n-1], slow[n-1]
	if math.IsNaN(prevFast) || math.IsNaN(prevSlow) || math.IsNaN(curFast) || math.IsNaN(curSlow) {
		return false
	}
	return prevFast < prevSlow && curFast >= curSlow
}
