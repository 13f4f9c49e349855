package calculator

import "math"

// FibLevels maps the standard retracement ratios onto the recent swing
// high/low range.
type FibLevels struct {
	Low  float64 // 0.0
	L382 float64
	L500 float64
	L618 float64
	L786 float64
	High float64 // 1.0
}

// CalculateFibonacci scans the trailing lookback window for the swing
// high/low and returns the ratio set mapped to price levels.
func CalculateFibonacci(highs, lows []float64, lookback int) FibLevels {
	n := len(highs)
	start := n - lookback
	if start < 0 {
		start = 0
	}
	hi := math.Inf(-1)
	lo := math.Inf(1)
	for i := start; i < n; i++ {
		if highs[i] > hi {
			hi = highs[i]
		}
		if lows[i] < lo {
			lo = lows[i]
		}
	}
	diff := hi - lo
	return FibLevels{
		Low:  lo,
		L382: lo + 0.382*diff,
		L500: lo + 0.5*diff,
		L618: lo + 0.618*diff,
		L786: lo + 0.786*diff,
		High: hi,
	}
}

// LastFractalHigh returns the most recent confirmed high fractal: a bar
// whose high exceeds the two bars on each side. The final two bars can
// never be confirmed. Returns NaN when no fractal exists.
func LastFractalHigh(highs []float64) float64 {
	for i := len(highs) - 3; i >= 2; i-- {
		if highs[i] > highs[i-1] && highs[i] > highs[i-2] &&
			highs[i] > highs[i+1] && highs[i] > highs[i+2] {
			return highs[i]
		}
	}
	return math.NaN()
}

// LastFractalLow is the symmetric low-fractal scan.
func LastFractalLow(lows []float64) float64 {
	for i := len(lows) - 3; i >= 2; i-- {
		if lows[i] < lows[i-1] && lows[i] < lows[i-2] &&
			lows[i] < lows[i+1] && lows[i] < lows[i+2] {
			return lows[i]
		}
	}
	return math.NaN()
}
