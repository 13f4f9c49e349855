package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Body returns the absolute size of the candle body.
func (b OHLCV) Body() float64 {
	if b.Close >= b.Open {
		return b.Close - b.Open
	}
	return b.Open - b.Close
}

// Range returns the full high-to-low span of the bar.
func (b OHLCV) Range() float64 {
	return b.High - b.Low
}

// Bullish reports whether the bar closed above its open.
func (b OHLCV) Bullish() bool {
	return b.Close > b.Open
}

// PriceSeries holds the raw price history fetched for one ticker.
// Daily covers roughly one year, Weekly roughly two; they are fetched
// independently and never merged.
type PriceSeries struct {
	Ticker    string
	Daily     []OHLCV
	Weekly    []OHLCV
	FetchedAt time.Time
}

// Closes extracts the close column from a bar slice.
func Closes(bars []OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high column from a bar slice.
func Highs(bars []OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low column from a bar slice.
func Lows(bars []OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the volume column from a bar slice.
func Volumes(bars []OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}

// Fundamentals holds the valuation multiples used by the invest strategy.
type Fundamentals struct {
	TrailingPE  float64
	PriceToBook float64
}

// DefaultFundamentals substitutes pessimistic values when the upstream
// payload is missing fields, so the invest rules never read zero as "cheap".
func DefaultFundamentals() Fundamentals {
	return Fundamentals{TrailingPE: 100, PriceToBook: 10}
}
