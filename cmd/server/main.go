package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/api"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/cache"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/collector"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/config"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/recorder"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/scheduler"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/screener"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/strategy"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/watchlist"
)

func main() {
	log := logrus.New()
	log.Info("alpha-hunter starting...")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config validation")
	}
	setupLogging(log, cfg)

	// Data source
	var fetcher collector.Fetcher
	if os.Getenv("USE_MOCK_DATA") == "true" {
		fetcher = &collector.MockFetcher{Price: 4000}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.DataSource.Proxy)
	}
	log.WithField("source", fetcher.Name()).Info("data source ready")

	col := collector.NewCollector(fetcher, log)
	eng := strategy.NewEngine(cfg.EngineParams())
	reports := cache.New(cfg.CacheTTL())
	scr := screener.New(col, eng, reports, log, screener.Options{
		Workers:     cfg.Screener.Workers,
		TaskTimeout: cfg.TaskTimeout(),
	})

	wl, err := watchlist.NewStore(cfg.Watchlist.StateFile, screener.DefaultWatchlist)
	if err != nil {
		log.WithError(err).Fatal("init watchlist")
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.WithError(err).Warn("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, scr, rec, screener.MarketUniverse, log)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.WithError(err).Fatal("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, executing scan now")
		go sched.RunNow()
	}

	server := api.NewServer(cfg.Server.Addr, scr, wl, rec, cfg.Screener.ScanLimit, log)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("http server")
		}
	}()

	log.Info("alpha-hunter is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	cancel()
	log.Info("alpha-hunter stopped")
}

func setupLogging(log *logrus.Logger, cfg *config.Config) {
	if lvl, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.Logging.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
