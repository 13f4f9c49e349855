package calculator

// CalculateStochastic computes %K over a kWindow rolling range and %D as
// its dWindow SMA. A flat window (high == low) yields a finite value via
// the epsilon guard, never NaN/Inf.
func CalculateStochastic(highs, lows, closes []float64, kWindow, dWindow int) (k, d []float64) {
	lowMin := rollingMin(lows, kWindow)
	highMax := rollingMax(highs, kWindow)
	k = nans(len(closes))
	for i := range closes {
		k[i] = 100 * safeDiv(closes[i]-lowMin[i], highMax[i]-lowMin[i])
	}
	d = CalculateSMA(k, dWindow)
	return k, d
}
