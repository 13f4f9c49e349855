package collector

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/calculator"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// MinDailyBars is the minimum daily history needed before scoring; anything
// shorter short-circuits as insufficient data.
const MinDailyBars = 60

// weeklyTrendBars is the history needed for the 50-week trend gate.
const weeklyTrendBars = 50

// Collector fetches price history and derives the full indicator set for
// one ticker per call. It holds no per-ticker state, so one instance is
// safe to share across the worker pool.
type Collector struct {
	fetcher Fetcher
	log     *logrus.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, log *logrus.Logger) *Collector {
	return &Collector{fetcher: fetcher, log: log}
}

// Collect fetches daily (1y) and weekly (2y) history plus fundamentals and
// computes every indicator. Returns ErrDataUnavailable when the daily
// series is shorter than MinDailyBars.
func (c *Collector) Collect(ctx context.Context, ticker string) (*model.Snapshot, error) {
	daily, err := c.fetcher.FetchHistory(ctx, ticker, "1d", "1y")
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(daily) < MinDailyBars {
		return nil, fmt.Errorf("%s: %d daily bars: %w", ticker, len(daily), ErrDataUnavailable)
	}

	weekly, err := c.fetcher.FetchHistory(ctx, ticker, "1wk", "2y")
	if err != nil {
		// The weekly gate degrades to NEUTRAL; daily scoring still runs.
		c.log.WithError(err).WithField("ticker", ticker).Warn("weekly bars unavailable")
		weekly = nil
	}

	fund, err := c.fetcher.FetchFundamentals(ctx, ticker)
	if err != nil {
		c.log.WithError(err).WithField("ticker", ticker).Warn("fundamentals unavailable, using defaults")
		fund = model.DefaultFundamentals()
	}

	return &model.Snapshot{
		Ticker:       ticker,
		Indicators:   BuildIndicatorSet(daily, weekly),
		Fundamentals: fund,
	}, nil
}

// BuildIndicatorSet derives the complete indicator snapshot from raw bars.
// Callers must guarantee at least MinDailyBars daily bars.
func BuildIndicatorSet(daily, weekly []model.OHLCV) model.IndicatorSet {
	n := len(daily)
	last := daily[n-1]
	prev := daily[n-2]

	closes := model.Closes(daily)
	highs := model.Highs(daily)
	lows := model.Lows(daily)
	volumes := model.Volumes(daily)

	set := model.IndicatorSet{
		LastPrice: last.Close,
		PrevClose: prev.Close,
		Open:      last.Open,
		High:      last.High,
		Low:       last.Low,
	}
	if prev.Close != 0 {
		set.ChangePct = (last.Close - prev.Close) / prev.Close
	}

	set.ATR = calculator.Last(calculator.CalculateATR(highs, lows, closes, 14))

	sma50 := calculator.CalculateSMA(closes, 50)
	sma200 := calculator.CalculateSMA(closes, 200)
	set.SMA5 = calculator.Last(calculator.CalculateSMA(closes, 5))
	set.SMA20 = calculator.Last(calculator.CalculateSMA(closes, 20))
	set.SMA50 = calculator.Last(sma50)
	set.SMA200 = calculator.Last(sma200)
	set.GoldenCross = calculator.CrossedAbove(sma50, sma200)

	set.RSI = calculator.Last(calculator.CalculateRSI(closes, 14))

	upper, lower := calculator.CalculateBollinger(closes, 20)
	middle := calculator.CalculateSMA(closes, 20)
	set.BBUpper = calculator.Last(upper)
	set.BBLower = calculator.Last(lower)
	set.Bandwidth = calculator.Last(calculator.CalculateBandwidth(upper, lower, middle))

	macd, signal := calculator.CalculateMACD(closes, 12, 26, 9)
	set.MACD = calculator.Last(macd)
	set.MACDSignal = calculator.Last(signal)

	set.OBV = calculator.Last(calculator.CalculateOBV(closes, volumes))
	set.RelVolume = calculator.Last(calculator.CalculateRelVolume(volumes, 20))

	smf := calculator.CalculateSMF(highs, lows, closes, volumes, 20)
	set.SMF = calculator.Last(smf)
	set.SMFPrev = calculator.Prev(smf)

	k, d := calculator.CalculateStochastic(highs, lows, closes, 14, 3)
	set.StochK = calculator.Last(k)
	set.StochD = calculator.Last(d)

	set.VWAP = calculator.Last(calculator.CalculateVWAP(highs, lows, closes, volumes))
	set.ADX = calculator.Last(calculator.CalculateADX(highs, lows, closes, 14))
	set.CMF = calculator.Last(calculator.CalculateCMF(highs, lows, closes, volumes, 20))

	fi := calculator.CalculateForceIndex(closes, volumes, 13)
	set.ForceIndex = calculator.Last(fi)
	set.ForceIndexPrev = calculator.Prev(fi)

	fib := calculator.CalculateFibonacci(highs, lows, 120)
	set.Fib50 = fib.L500
	set.Fib618 = fib.L618

	set.FractalHigh = calculator.LastFractalHigh(highs)
	set.Patterns = calculator.DetectCandlePatterns(last, prev)

	set.Trend = weeklyTrend(weekly)
	return set
}

// weeklyTrend gates every strategy: weekly close vs its 50-week SMA.
func weeklyTrend(weekly []model.OHLCV) model.WeeklyTrend {
	if len(weekly) <= weeklyTrendBars {
		return model.TrendNeutral
	}
	closes := model.Closes(weekly)
	sma := calculator.Last(calculator.CalculateSMA(closes, weeklyTrendBars))
	if math.IsNaN(sma) {
		return model.TrendNeutral
	}
	if closes[len(closes)-1] > sma {
		return model.TrendBullish
	}
	return model.TrendBearish
}
