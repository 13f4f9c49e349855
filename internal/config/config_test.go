package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Scoring.StrongBuyScore != 88 || cfg.Scoring.BuyScore != 65 || cfg.Scoring.NeutralScore != 50 {
		t.Errorf("score cutoffs = %+v", cfg.Scoring)
	}
	if cfg.Screener.Workers != 8 {
		t.Errorf("workers = %d", cfg.Screener.Workers)
	}
	if cfg.TaskTimeout() != 20*time.Second {
		t.Errorf("task timeout = %v", cfg.TaskTimeout())
	}
	if cfg.CacheTTL() != 5*time.Minute {
		t.Errorf("cache ttl = %v", cfg.CacheTTL())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
server:
  addr: ":9000"
scoring:
  buy_score: 70
screener:
  workers: 4
  cache_ttl_sec: 60
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCAN_WORKERS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Scoring.BuyScore != 70 {
		t.Errorf("buy score = %d", cfg.Scoring.BuyScore)
	}
	if cfg.Screener.Workers != 2 {
		t.Errorf("env override lost: workers = %d", cfg.Screener.Workers)
	}
	if cfg.CacheTTL() != time.Minute {
		t.Errorf("cache ttl = %v", cfg.CacheTTL())
	}
}

func TestEngineParamsMapping(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p := cfg.EngineParams()
	if p.StrongBuyScore != 88 || p.SupportMargin != 0.995 || p.RewardRatio != 3.0 {
		t.Errorf("params = %+v", p)
	}
}

func TestValidateRejectsInvertedCutoffs(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Scoring.BuyScore = 95
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for buy_score above strong_buy_score")
	}

	cfg, _ = Load(filepath.Join(t.TempDir(), "missing.yml"))
	cfg.Scoring.SupportMargin = 1.2
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for support_margin above 1")
	}
}
