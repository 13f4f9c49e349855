package calculator

import "math"

// CalculateADX computes the Average Directional Index. Directional moves
// are zero-clamped before smoothing; the +DI/−DI ratio is epsilon-guarded.
func CalculateADX(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	out := nans(n)
	if period <= 0 || n < 2*period {
		return out
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		if up > 0 {
			plusDM[i] = up
		}
		if down > 0 {
			minusDM[i] = down
		}
	}

	atr := CalculateATR(highs, lows, closes, period)
	alpha := 1.0 / float64(period)
	plusSm := emaAlpha(plusDM, alpha)
	minusSm := emaAlpha(minusDM, alpha)

	dx := nans(n)
	for i := range closes {
		if math.IsNaN(atr[i]) {
			continue
		}
		plusDI := 100 * safeDiv(plusSm[i], atr[i])
		minusDI := 100 * safeDiv(minusSm[i], atr[i])
		dx[i] = 100 * safeDiv(math.Abs(plusDI-minusDI), math.Abs(plusDI+minusDI))
	}
	return CalculateSMA(dx, period)
}
