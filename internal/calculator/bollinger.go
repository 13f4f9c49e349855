package calculator

// CalculateBollinger returns the upper and lower bands: SMA(window) ± 2σ.
// The first window-1 values of both bands are NaN.
func CalculateBollinger(closes []float64, window int) (upper, lower []float64) {
	sma := CalculateSMA(closes, window)
	std := rollingStd(closes, window)
	upper = nans(len(closes))
	lower = nans(len(closes))
	for i := range closes {
		upper[i] = sma[i] + 2*std[i]
		lower[i] = sma[i] - 2*std[i]
	}
	return upper, lower
}

// CalculateBandwidth returns (upper-lower)/middle·100, the volatility
// squeeze signal. Values under ~5 flag a squeeze.
func CalculateBandwidth(upper, lower, middle []float64) []float64 {
	out := nans(len(upper))
	for i := range upper {
		out[i] = safeDiv(upper[i]-lower[i], middle[i]) * 100
	}
	return out
}
