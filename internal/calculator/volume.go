package calculator

// CalculateOBV computes the cumulative signed-volume sum. The first bar
// contributes zero; direction follows the close-to-close change.
func CalculateOBV(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	cum := 0.0
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			cum += volumes[i]
		case closes[i] < closes[i-1]:
			cum -= volumes[i]
		}
		out[i] = cum
	}
	return out
}

// CalculateRelVolume returns current volume divided by its rolling mean.
// Values above ~1.5 signal unusual activity.
func CalculateRelVolume(volumes []float64, window int) []float64 {
	avg := CalculateSMA(volumes, window)
	out := nans(len(volumes))
	for i := range volumes {
		out[i] = safeDiv(volumes[i], avg[i])
	}
	return out
}

// CalculateSMF computes the smart money flow: intraday intensity
// (2·close − high − low)/(high − low) weighted by volume and rolling-summed.
func CalculateSMF(highs, lows, closes, volumes []float64, period int) []float64 {
	iii := make([]float64, len(closes))
	for i := range closes {
		iii[i] = safeDiv(2*closes[i]-highs[i]-lows[i], highs[i]-lows[i]) * volumes[i]
	}
	return rollingSum(iii, period)
}

// CalculateCMF computes the Chaikin Money Flow: rolling money-flow-volume
// over rolling volume.
func CalculateCMF(highs, lows, closes, volumes []float64, period int) []float64 {
	mfv := make([]float64, len(closes))
	for i := range closes {
		mult := safeDiv((closes[i]-lows[i])-(highs[i]-closes[i]), highs[i]-lows[i])
		mfv[i] = mult * volumes[i]
	}
	mfvSum := rollingSum(mfv, period)
	volSum := rollingSum(volumes, period)
	out := nans(len(closes))
	for i := range closes {
		out[i] = safeDiv(mfvSum[i], volSum[i])
	}
	return out
}

// CalculateForceIndex computes the EMA-smoothed force index:
// close-to-close change times volume.
func CalculateForceIndex(closes, volumes []float64, span int) []float64 {
	fi := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		fi[i] = (closes[i] - closes[i-1]) * volumes[i]
	}
	return CalculateEMA(fi, span)
}
