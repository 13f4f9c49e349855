package calculator

import "math"

// trueRange returns the per-bar true range series: the greatest of
// high−low, |high−prevClose| and |low−prevClose|.
func trueRange(highs, lows, closes []float64) []float64 {
	tr := make([]float64, len(closes))
	for i := range closes {
		hl := highs[i] - lows[i]
		if i == 0 {
			tr[i] = hl
			continue
		}
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	return tr
}

// CalculateATR computes the rolling mean of the true range, the volatility
// unit used for stop-loss and target spacing.
func CalculateATR(highs, lows, closes []float64, period int) []float64 {
	return CalculateSMA(trueRange(highs, lows, closes), period)
}
