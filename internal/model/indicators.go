package model

// WeeklyTrend classifies the weekly close against its 50-week moving average.
type WeeklyTrend string

const (
	TrendBullish WeeklyTrend = "BULLISH"
	TrendBearish WeeklyTrend = "BEARISH"
	TrendNeutral WeeklyTrend = "NEUTRAL"
)

// IndicatorSet holds the most recent value of every computed indicator for
// one ticker, plus the previous value where the scoring rules compare
// deltas (smart money flow, force index). It is rebuilt from scratch on
// every scoring call. Unavailable indicators are NaN; NaN comparisons are
// false, so a missing feature contributes zero to every score.
type IndicatorSet struct {
	LastPrice float64
	PrevClose float64
	ChangePct float64 // fraction, not percent
	Open      float64
	High      float64
	Low       float64

	ATR float64

	SMA5   float64
	SMA20  float64
	SMA50  float64
	SMA200 float64 // NaN when fewer than 200 daily bars

	GoldenCross bool // SMA50 crossed above SMA200 on the last bar

	RSI float64

	BBUpper   float64
	BBLower   float64
	Bandwidth float64 // percent of the middle band

	MACD       float64
	MACDSignal float64

	OBV       float64
	RelVolume float64

	SMF     float64 // smart money flow, rolling intraday intensity
	SMFPrev float64

	StochK float64
	StochD float64

	VWAP float64
	ADX  float64
	CMF  float64

	ForceIndex     float64
	ForceIndexPrev float64

	Fib50  float64 // fibonacci 0.5 retracement price
	Fib618 float64 // fibonacci 0.618 retracement price

	FractalHigh float64 // most recent confirmed high fractal, NaN if none

	Patterns []string // candle patterns matched on the last bar

	Trend WeeklyTrend
}

// HasPattern reports whether the named candle pattern matched on the last bar.
func (s *IndicatorSet) HasPattern(name string) bool {
	for _, p := range s.Patterns {
		if p == name {
			return true
		}
	}
	return false
}

// Snapshot is the complete per-ticker input to the scoring engine.
type Snapshot struct {
	Ticker       string
	Indicators   IndicatorSet
	Fundamentals Fundamentals
}
