// Package scheduler runs the periodic market scan: the whole universe is
// analyzed on a cron schedule and the scored outcomes are persisted for
// later review.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/recorder"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/screener"
)

// Scheduler manages the cron-driven universe scan.
type Scheduler struct {
	cron     *cron.Cron
	screener *screener.Screener
	recorder recorder.Recorder
	log      *logrus.Logger
	universe []string
	ctx      context.Context
}

// NewScheduler creates a Scheduler scanning the given universe.
func NewScheduler(ctx context.Context, scr *screener.Screener, rec recorder.Recorder, universe []string, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		screener: scr,
		recorder: rec,
		log:      log,
		universe: universe,
		ctx:      ctx,
	}
}

// Register wires the scan job onto its cron expression.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

// RunNow executes the scan immediately (manual trigger / run-on-start).
func (s *Scheduler) RunNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	s.log.WithField("universe", len(s.universe)).Info("running scheduled scan")

	reports := s.screener.ScanAll(s.ctx, s.universe)

	var ok, skipped, failed int
	for _, report := range reports {
		switch report.Result.Status {
		case model.StatusOK:
			ok++
			if err := s.recorder.RecordScan(report); err != nil {
				s.log.WithError(err).WithField("ticker", report.Result.Ticker).Error("record scan")
			}
		case model.StatusSkip:
			skipped++
		default:
			failed++
		}
	}

	s.log.WithFields(logrus.Fields{
		"scored":  ok,
		"skipped": skipped,
		"failed":  failed,
		"dropped": len(s.universe) - len(reports),
	}).Info("scheduled scan finished")
}
