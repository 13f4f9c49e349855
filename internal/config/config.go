package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataSource struct {
		Proxy string `yaml:"proxy"`
	} `yaml:"data_source"`
	Scoring struct {
		StrongBuyScore   int     `yaml:"strong_buy_score"`
		BuyScore         int     `yaml:"buy_score"`
		NeutralScore     int     `yaml:"neutral_score"`
		SupportMargin    float64 `yaml:"support_margin"`
		StopATRMult      float64 `yaml:"stop_atr_mult"`
		RewardRatio      float64 `yaml:"reward_ratio"`
		SwingVetoPenalty int     `yaml:"swing_veto_penalty"`
	} `yaml:"scoring"`
	Screener struct {
		Workers        int `yaml:"workers"`
		TaskTimeoutSec int `yaml:"task_timeout_sec"`
		CacheTTLSec    int `yaml:"cache_ttl_sec"`
		ScanLimit      int `yaml:"scan_limit"`
	} `yaml:"screener"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Watchlist struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"watchlist"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // "text" or "json"
	} `yaml:"logging"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A local .env file, if present, feeds the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SCAN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Screener.Workers = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Scoring.StrongBuyScore == 0 {
		cfg.Scoring.StrongBuyScore = 88
	}
	if cfg.Scoring.BuyScore == 0 {
		cfg.Scoring.BuyScore = 65
	}
	if cfg.Scoring.NeutralScore == 0 {
		cfg.Scoring.NeutralScore = 50
	}
	if cfg.Scoring.SupportMargin == 0 {
		cfg.Scoring.SupportMargin = 0.995
	}
	if cfg.Scoring.StopATRMult == 0 {
		cfg.Scoring.StopATRMult = 2.0
	}
	if cfg.Scoring.RewardRatio == 0 {
		cfg.Scoring.RewardRatio = 3.0
	}
	if cfg.Scoring.SwingVetoPenalty == 0 {
		cfg.Scoring.SwingVetoPenalty = 30
	}
	if cfg.Screener.Workers == 0 {
		cfg.Screener.Workers = 8
	}
	if cfg.Screener.TaskTimeoutSec == 0 {
		cfg.Screener.TaskTimeoutSec = 20
	}
	if cfg.Screener.CacheTTLSec == 0 {
		cfg.Screener.CacheTTLSec = 300
	}
	if cfg.Screener.ScanLimit == 0 {
		cfg.Screener.ScanLimit = 40
	}
	if cfg.Schedule.ScanCron == "" {
		// Twice per trading day, Jakarta hours: after open and before close.
		cfg.Schedule.ScanCron = "0 30 9 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/alpha_hunter.db"
	}
	if cfg.Watchlist.StateFile == "" {
		cfg.Watchlist.StateFile = "data/watchlist.json"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return cfg, nil
}

// TaskTimeout returns the per-ticker scan deadline.
func (c *Config) TaskTimeout() time.Duration {
	return time.Duration(c.Screener.TaskTimeoutSec) * time.Second
}

// CacheTTL returns how long analysis reports stay fresh.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Screener.CacheTTLSec) * time.Second
}

// EngineParams maps the scoring section onto engine parameters.
func (c *Config) EngineParams() strategy.Params {
	return strategy.Params{
		StrongBuyScore:   c.Scoring.StrongBuyScore,
		BuyScore:         c.Scoring.BuyScore,
		NeutralScore:     c.Scoring.NeutralScore,
		SupportMargin:    c.Scoring.SupportMargin,
		StopATRMult:      c.Scoring.StopATRMult,
		RewardRatio:      c.Scoring.RewardRatio,
		SwingVetoPenalty: c.Scoring.SwingVetoPenalty,
	}
}

// Validate checks that the loaded configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Scoring.BuyScore >= c.Scoring.StrongBuyScore {
		return fmt.Errorf("scoring.buy_score must be below strong_buy_score")
	}
	if c.Scoring.NeutralScore >= c.Scoring.BuyScore {
		return fmt.Errorf("scoring.neutral_score must be below buy_score")
	}
	if c.Scoring.SupportMargin <= 0 || c.Scoring.SupportMargin >= 1 {
		return fmt.Errorf("scoring.support_margin must be in (0, 1)")
	}
	if c.Scoring.RewardRatio <= 0 {
		return fmt.Errorf("scoring.reward_ratio must be positive")
	}
	if c.Screener.Workers <= 0 {
		return fmt.Errorf("screener.workers must be positive")
	}
	return nil
}
