// Package screener runs the full analysis pipeline for one ticker or a
// whole universe: collect bars, score strategies, derive the trade plan.
// Batch scans fan out over a bounded worker pool so one slow upstream
// call never stalls the rest of the universe.
package screener

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/cache"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/collector"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/metrics"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/strategy"
)

const (
	// DefaultWorkers bounds concurrent upstream fetches during a scan.
	DefaultWorkers = 8
	// DefaultTaskTimeout caps one ticker's collect-and-score round trip.
	DefaultTaskTimeout = 20 * time.Second
)

// Screener wires the collector, engine and cache into one pipeline.
type Screener struct {
	collector   *collector.Collector
	engine      *strategy.Engine
	cache       *cache.ReportCache
	log         *logrus.Logger
	workers     int
	taskTimeout time.Duration
}

// Options tune the batch scan behavior. Zero values fall back to defaults.
type Options struct {
	Workers     int
	TaskTimeout time.Duration
}

// New creates a Screener. A nil cache disables caching.
func New(col *collector.Collector, eng *strategy.Engine, reports *cache.ReportCache, log *logrus.Logger, opts Options) *Screener {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.TaskTimeout <= 0 {
		opts.TaskTimeout = DefaultTaskTimeout
	}
	if reports == nil {
		reports = cache.New(0)
	}
	return &Screener{
		collector:   col,
		engine:      eng,
		cache:       reports,
		log:         log,
		workers:     opts.Workers,
		taskTimeout: opts.TaskTimeout,
	}
}

// Analyze runs the pipeline for one ticker, serving from cache when fresh.
// Upstream failures never surface as errors: insufficient history becomes a
// SKIP report, anything else an ERROR report.
func (s *Screener) Analyze(ctx context.Context, ticker string) *model.StockReport {
	ticker = NormalizeTicker(ticker)

	if report, ok := s.cache.Get(ticker); ok {
		metrics.CacheHitsTotal.Inc()
		return report
	}

	snap, err := s.collector.Collect(ctx, ticker)
	if err != nil {
		if errors.Is(err, collector.ErrDataUnavailable) {
			metrics.ScansTotal.WithLabelValues(string(model.StatusSkip)).Inc()
			return &model.StockReport{Result: strategy.SkipResult(ticker, "insufficient history")}
		}
		metrics.FetchErrorsTotal.Inc()
		metrics.ScansTotal.WithLabelValues(string(model.StatusError)).Inc()
		s.log.WithError(err).WithField("ticker", ticker).Warn("analysis failed")
		return &model.StockReport{Result: strategy.ErrorResult(ticker, errText(err))}
	}

	result := s.engine.Analyze(snap)
	report := &model.StockReport{Result: result}
	if result.Status == model.StatusOK {
		support := float64(result.Support)
		report.Plan = strategy.BuildPlan(result.Strategy, float64(result.LastPrice), support)
	}

	metrics.ScansTotal.WithLabelValues(string(result.Status)).Inc()
	if result.Status == model.StatusOK {
		s.cache.Set(ticker, report)
	}
	return report
}

// ScanAll analyzes a universe over the worker pool and returns the reports
// sorted by score, best first. Tickers whose task deadline expires are
// dropped; everything else, including SKIP and ERROR reports, is kept so a
// bad ticker never hides the rest of the batch.
func (s *Screener) ScanAll(ctx context.Context, tickers []string) []*model.StockReport {
	start := time.Now()
	defer func() { metrics.BatchDuration.Observe(time.Since(start).Seconds()) }()

	jobs := make(chan string)
	results := make(chan *model.StockReport, len(tickers))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticker := range jobs {
				taskCtx, cancel := context.WithTimeout(ctx, s.taskTimeout)
				report := s.Analyze(taskCtx, ticker)
				expired := taskCtx.Err() != nil
				cancel()
				if expired {
					s.log.WithField("ticker", ticker).Warn("scan task timed out, dropping")
					continue
				}
				results <- report
			}
		}()
	}

	for _, t := range tickers {
		jobs <- t
	}
	close(jobs)
	wg.Wait()
	close(results)

	reports := make([]*model.StockReport, 0, len(tickers))
	for r := range results {
		reports = append(reports, r)
	}
	sortReports(reports)
	return reports
}

// sortReports orders by score descending, then ticker for determinism.
func sortReports(reports []*model.StockReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		a, b := reports[i].Result, reports[j].Result
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Ticker < b.Ticker
	})
}

// errText flattens a wrapped error chain into a single reason line.
func errText(err error) string {
	return strings.TrimSpace(err.Error())
}
