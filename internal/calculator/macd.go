package calculator

// CalculateMACD computes the EMA(fast)−EMA(slow) difference and its signal
// line (EMA of the difference over signalSpan).
func CalculateMACD(closes []float64, fast, slow, signalSpan int) (macd, signal []float64) {
	emaFast := CalculateEMA(closes, fast)
	emaSlow := CalculateEMA(closes, slow)
	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = emaFast[i] - emaSlow[i]
	}
	signal = CalculateEMA(macd, signalSpan)
	return macd, signal
}
