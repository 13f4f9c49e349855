package calculator

import (
	"math"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// Candle pattern labels.
const (
	PatternDoji          = "Doji"
	PatternHammer        = "Hammer"
	PatternBullMarubozu  = "Bullish Marubozu"
	PatternBearMarubozu  = "Bearish Marubozu"
	PatternBullEngulfing = "Bullish Engulfing"
)

// DetectCandlePatterns classifies the last bar against its predecessor from
// body/shadow ratios. A bar can match several patterns; order carries no
// meaning.
func DetectCandlePatterns(bar, prev model.OHLCV) []string {
	body := bar.Body()
	rng := bar.Range()
	upperShadow := bar.High - math.Max(bar.Open, bar.Close)
	lowerShadow := math.Min(bar.Open, bar.Close) - bar.Low

	var patterns []string
	if rng > 0 && body <= rng*0.1 {
		patterns = append(patterns, PatternDoji)
	}
	if rng > 0 && lowerShadow >= body*2 && upperShadow <= body*0.5 {
		patterns = append(patterns, PatternHammer)
	}
	if rng > 0 && body > rng*0.85 {
		if bar.Bullish() {
			patterns = append(patterns, PatternBullMarubozu)
		} else {
			patterns = append(patterns, PatternBearMarubozu)
		}
	}
	if prev.Close < prev.Open && bar.Bullish() &&
		bar.Close > prev.Open && bar.Open < prev.Close {
		patterns = append(patterns, PatternBullEngulfing)
	}
	return patterns
}
