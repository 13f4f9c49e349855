package collector

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestCollectShortHistory(t *testing.T) {
	fetcher := &MockFetcher{DailyData: GenerateBars(500, MinDailyBars-1)}
	c := NewCollector(fetcher, testLog())

	_, err := c.Collect(context.Background(), "STUB.JK")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestCollectFetchError(t *testing.T) {
	fetcher := &MockFetcher{Err: errors.New("connection reset")}
	c := NewCollector(fetcher, testLog())

	_, err := c.Collect(context.Background(), "STUB.JK")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrDataUnavailable) {
		t.Errorf("transport failure should not look like missing data: %v", err)
	}
}

func TestCollectBuildsFullSnapshot(t *testing.T) {
	fetcher := &MockFetcher{Price: 4000}
	c := NewCollector(fetcher, testLog())

	snap, err := c.Collect(context.Background(), "BBRI.JK")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if snap.Ticker != "BBRI.JK" {
		t.Errorf("ticker = %q", snap.Ticker)
	}

	ind := snap.Indicators
	if ind.LastPrice <= 0 {
		t.Errorf("last price = %v, want positive", ind.LastPrice)
	}
	// 252 synthetic bars is enough history for every indicator to resolve.
	for name, v := range map[string]float64{
		"ATR":    ind.ATR,
		"SMA5":   ind.SMA5,
		"SMA20":  ind.SMA20,
		"SMA50":  ind.SMA50,
		"SMA200": ind.SMA200,
		"RSI":    ind.RSI,
		"VWAP":   ind.VWAP,
		"ADX":    ind.ADX,
		"StochK": ind.StochK,
		"StochD": ind.StochD,
	} {
		if math.IsNaN(v) {
			t.Errorf("%s is NaN, want a value", name)
		}
	}
	if ind.RSI < 0 || ind.RSI > 100 {
		t.Errorf("RSI = %v, out of bounds", ind.RSI)
	}
}

func TestCollectWeeklyFailureDegradesToNeutral(t *testing.T) {
	daily := GenerateBars(4000, 252)
	fetcher := &MockFetcher{DailyData: daily, WeeklyData: []model.OHLCV{}}
	c := NewCollector(fetcher, testLog())

	snap, err := c.Collect(context.Background(), "BBRI.JK")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if snap.Indicators.Trend != model.TrendNeutral {
		t.Errorf("trend = %q, want %q with no weekly bars", snap.Indicators.Trend, model.TrendNeutral)
	}
}

func TestWeeklyTrendDirection(t *testing.T) {
	up := GenerateBars(4000, 104) // rises through its own 50-week mean
	if got := weeklyTrend(up); got != model.TrendBullish {
		t.Errorf("uptrend = %q, want %q", got, model.TrendBullish)
	}

	down := make([]model.OHLCV, len(up))
	for i := range up {
		down[i] = up[len(up)-1-i]
	}
	if got := weeklyTrend(down); got != model.TrendBearish {
		t.Errorf("downtrend = %q, want %q", got, model.TrendBearish)
	}

	if got := weeklyTrend(up[:20]); got != model.TrendNeutral {
		t.Errorf("short history = %q, want %q", got, model.TrendNeutral)
	}
}

func TestBuildIndicatorSetChangePct(t *testing.T) {
	bars := GenerateBars(1000, 252)
	bars[len(bars)-2].Close = 1000
	bars[len(bars)-1].Close = 1020

	set := BuildIndicatorSet(bars, nil)
	if got := set.ChangePct; math.Abs(got-0.02) > 1e-9 {
		t.Errorf("change pct = %v, want 0.02", got)
	}
	if set.PrevClose != 1000 || set.LastPrice != 1020 {
		t.Errorf("last/prev = %v/%v", set.LastPrice, set.PrevClose)
	}
}
