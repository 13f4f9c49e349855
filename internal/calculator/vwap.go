package calculator

// CalculateVWAP computes the session-cumulative volume weighted average
// price: cumulative(typical price × volume) / cumulative(volume).
func CalculateVWAP(highs, lows, closes, volumes []float64) []float64 {
	out := nans(len(closes))
	cumTPV := 0.0
	cumVol := 0.0
	for i := range closes {
		tp := (highs[i] + lows[i] + closes[i]) / 3
		cumTPV += tp * volumes[i]
		cumVol += volumes[i]
		out[i] = safeDiv(cumTPV, cumVol)
	}
	return out
}
