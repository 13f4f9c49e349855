package screener

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/cache"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/collector"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/strategy"
)

// routedFetcher returns per-ticker canned data and counts fetch calls.
type routedFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	bars  map[string][]model.OHLCV
	errs  map[string]error
	block map[string]bool // block until the context expires
}

func newRoutedFetcher() *routedFetcher {
	return &routedFetcher{
		calls: make(map[string]int),
		bars:  make(map[string][]model.OHLCV),
		errs:  make(map[string]error),
		block: make(map[string]bool),
	}
}

func (f *routedFetcher) Name() string { return "routed" }

func (f *routedFetcher) FetchHistory(ctx context.Context, ticker, interval, _ string) ([]model.OHLCV, error) {
	f.mu.Lock()
	if interval == "1d" {
		f.calls[ticker]++
	}
	err := f.errs[ticker]
	bars := f.bars[ticker]
	blocked := f.block[ticker]
	f.mu.Unlock()

	if blocked {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	if bars != nil {
		return bars, nil
	}
	if interval == "1wk" {
		return collector.GenerateBars(1000, 104), nil
	}
	return collector.GenerateBars(1000, 252), nil
}

func (f *routedFetcher) FetchFundamentals(context.Context, string) (model.Fundamentals, error) {
	return model.DefaultFundamentals(), nil
}

func (f *routedFetcher) dailyCalls(ticker string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[ticker]
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestScreener(f collector.Fetcher, ttl time.Duration, opts Options) *Screener {
	log := quietLog()
	col := collector.NewCollector(f, log)
	eng := strategy.NewEngine(strategy.DefaultParams())
	return New(col, eng, cache.New(ttl), log, opts)
}

func TestAnalyzeShortHistoryIsSkip(t *testing.T) {
	f := newRoutedFetcher()
	f.bars["STUB.JK"] = collector.GenerateBars(500, 30)
	s := newTestScreener(f, 0, Options{})

	report := s.Analyze(context.Background(), "STUB")
	if report.Result.Status != model.StatusSkip {
		t.Fatalf("status = %q, want %q", report.Result.Status, model.StatusSkip)
	}
	if report.Plan != nil {
		t.Errorf("skip report should carry no plan")
	}
}

func TestAnalyzeFetchErrorIsErrorReport(t *testing.T) {
	f := newRoutedFetcher()
	f.errs["DOWN.JK"] = errors.New("upstream 502")
	s := newTestScreener(f, 0, Options{})

	report := s.Analyze(context.Background(), "DOWN")
	if report.Result.Status != model.StatusError {
		t.Fatalf("status = %q, want %q", report.Result.Status, model.StatusError)
	}
	if report.Result.Reason == "" {
		t.Errorf("error report should explain the failure")
	}
}

func TestAnalyzeNormalizesTickerAndBuildsPlan(t *testing.T) {
	f := newRoutedFetcher()
	s := newTestScreener(f, 0, Options{})

	report := s.Analyze(context.Background(), "bbri")
	if report.Result.Ticker != "BBRI.JK" {
		t.Fatalf("ticker = %q, want BBRI.JK", report.Result.Ticker)
	}
	if report.Result.Status != model.StatusOK {
		t.Fatalf("status = %q, want %q", report.Result.Status, model.StatusOK)
	}
	if report.Plan == nil {
		t.Fatal("ok report should carry a trade plan")
	}
	if report.Plan.StopLoss <= 0 {
		t.Errorf("plan stop-loss = %d, want positive", report.Plan.StopLoss)
	}
}

func TestAnalyzeServesFromCache(t *testing.T) {
	f := newRoutedFetcher()
	s := newTestScreener(f, time.Minute, Options{})

	first := s.Analyze(context.Background(), "BBCA")
	second := s.Analyze(context.Background(), "BBCA")

	if got := f.dailyCalls("BBCA.JK"); got != 1 {
		t.Fatalf("daily fetches = %d, want 1 (second call cached)", got)
	}
	if first != second {
		t.Errorf("cached call should return the stored report")
	}
}

func TestScanAllIsolatesBadTicker(t *testing.T) {
	f := newRoutedFetcher()
	f.errs["DOWN.JK"] = errors.New("connection refused")
	s := newTestScreener(f, 0, Options{Workers: 2})

	reports := s.ScanAll(context.Background(), []string{"BBRI", "DOWN", "TLKM"})
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}
	byTicker := make(map[string]model.ResultStatus)
	for _, r := range reports {
		byTicker[r.Result.Ticker] = r.Result.Status
	}
	if byTicker["DOWN.JK"] != model.StatusError {
		t.Errorf("DOWN.JK status = %q, want %q", byTicker["DOWN.JK"], model.StatusError)
	}
	if byTicker["BBRI.JK"] != model.StatusOK || byTicker["TLKM.JK"] != model.StatusOK {
		t.Errorf("healthy tickers should still score: %v", byTicker)
	}
}

func TestScanAllDropsTimedOutTicker(t *testing.T) {
	f := newRoutedFetcher()
	f.block["SLOW.JK"] = true
	s := newTestScreener(f, 0, Options{Workers: 2, TaskTimeout: 50 * time.Millisecond})

	reports := s.ScanAll(context.Background(), []string{"BBRI", "SLOW", "TLKM"})
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2 (SLOW dropped)", len(reports))
	}
	for _, r := range reports {
		if r.Result.Ticker == "SLOW.JK" {
			t.Errorf("timed-out ticker should be dropped from results")
		}
	}
}

func TestSortReportsByScoreThenTicker(t *testing.T) {
	mk := func(ticker string, score int) *model.StockReport {
		return &model.StockReport{Result: &model.AnalysisResult{Ticker: ticker, Score: score}}
	}
	reports := []*model.StockReport{
		mk("CCC.JK", 40), mk("AAA.JK", 70), mk("BBB.JK", 70), mk("DDD.JK", 0),
	}
	sortReports(reports)

	want := []string{"AAA.JK", "BBB.JK", "CCC.JK", "DDD.JK"}
	for i, w := range want {
		if reports[i].Result.Ticker != w {
			t.Fatalf("position %d = %s, want %s", i, reports[i].Result.Ticker, w)
		}
	}
}

func TestNormalizeTicker(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"bbri", "BBRI.JK"},
		{"BBRI.JK", "BBRI.JK"},
		{" goto ", "GOTO.JK"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeTicker(tc.in); got != tc.want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsSyariah(t *testing.T) {
	if !IsSyariah("BBRI.JK") {
		t.Errorf("BBRI should be on the sharia list")
	}
	if IsSyariah("BMRI.JK") {
		t.Errorf("BMRI should not be on the sharia list")
	}
}
