package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"PortfolioSentinel/internal/model"
)

// InstrumentConfig defines one basket member.
type InstrumentConfig struct {
	Symbol string `yaml:"symbol"`
	Ticker string `yaml:"ticker"`
	Bucket string `yaml:"bucket"`
}

// BucketConfig defines a bucket's target fraction and within-bucket weights.
type BucketConfig struct {
	Target  float64            `yaml:"target"`
	Weights map[string]float64 `yaml:"weights"`
}

// Config holds all application configuration.
type Config struct {
	Portfolio struct {
		SafeSymbol     string  `yaml:"safe_symbol"`
		CashSymbol     string  `yaml:"cash_symbol"`
		MomentumPct    float64 `yaml:"momentum_pct"`
		MaxTurnoverPct float64 `yaml:"max_turnover_pct"`
		Deadband       float64 `yaml:"deadband"`
		HoldingsFile   string  `yaml:"holdings_file"`
	} `yaml:"portfolio"`
	Instruments []InstrumentConfig      `yaml:"instruments"`
	Buckets     map[string]BucketConfig `yaml:"buckets"`
	DataSource  struct {
		Provider string `yaml:"provider"` // "yahoo" or "file"
		FileDir  string `yaml:"file_dir"`
	} `yaml:"data_source"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Audit struct {
		Dir string `yaml:"dir"`
	} `yaml:"audit"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty *bool  `yaml:"pretty"`
	} `yaml:"logging"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HOLDINGS_FILE"); v != "" {
		cfg.Portfolio.HoldingsFile = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Portfolio.CashSymbol == "" {
		cfg.Portfolio.CashSymbol = "CASH"
	}
	if cfg.Portfolio.MomentumPct == 0 {
		cfg.Portfolio.MomentumPct = 0.05
	}
	if cfg.Portfolio.MaxTurnoverPct == 0 {
		cfg.Portfolio.MaxTurnoverPct = 0.20
	}
	if cfg.Portfolio.Deadband == 0 {
		cfg.Portfolio.Deadband = 1000
	}
	if cfg.Portfolio.HoldingsFile == "" {
		cfg.Portfolio.HoldingsFile = "data/holdings.json"
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 9 * * 1" // Monday 09:00
	}
	if cfg.Audit.Dir == "" {
		cfg.Audit.Dir = "rebalance_logs"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/portfolio_sentinel.db"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Pretty == nil {
		pretty := true
		cfg.Logging.Pretty = &pretty
	}

	return cfg, nil
}

// Validate checks hard requirements. Soft policy inconsistencies are
// reported by Warnings instead; they degrade a run, never abort it.
func (c *Config) Validate() error {
	if len(c.Instruments) == 0 {
		return fmt.Errorf("at least one instrument is required")
	}
	seen := make(map[string]bool, len(c.Instruments))
	for i, inst := range c.Instruments {
		if inst.Symbol == "" {
			return fmt.Errorf("instruments[%d]: symbol is required", i)
		}
		if inst.Ticker == "" {
			return fmt.Errorf("instrument %s: ticker is required", inst.Symbol)
		}
		if seen[inst.Symbol] {
			return fmt.Errorf("instrument %s: duplicate symbol", inst.Symbol)
		}
		seen[inst.Symbol] = true
	}
	if c.Portfolio.SafeSymbol == "" {
		return fmt.Errorf("portfolio.safe_symbol is required")
	}
	if !seen[c.Portfolio.SafeSymbol] {
		return fmt.Errorf("portfolio.safe_symbol %s is not a configured instrument", c.Portfolio.SafeSymbol)
	}
	if c.Portfolio.MomentumPct < 0 || c.Portfolio.MomentumPct > 1 {
		return fmt.Errorf("portfolio.momentum_pct must be within [0,1]")
	}
	if c.Portfolio.MaxTurnoverPct <= 0 || c.Portfolio.MaxTurnoverPct > 1 {
		return fmt.Errorf("portfolio.max_turnover_pct must be within (0,1]")
	}
	if c.Portfolio.Deadband < 0 {
		return fmt.Errorf("portfolio.deadband must not be negative")
	}
	for bucket, bc := range c.Buckets {
		if bc.Target < 0 || bc.Target > 1 {
			return fmt.Errorf("bucket %s: target must be within [0,1]", bucket)
		}
		for symbol, w := range bc.Weights {
			if w < 0 || w > 1 {
				return fmt.Errorf("bucket %s: weight for %s must be within [0,1]", bucket, symbol)
			}
			if !seen[symbol] {
				return fmt.Errorf("bucket %s: weight references unknown instrument %s", bucket, symbol)
			}
		}
	}
	switch c.DataSource.Provider {
	case "yahoo":
	case "file":
		if c.DataSource.FileDir == "" {
			return fmt.Errorf("data_source.file_dir is required for the file provider")
		}
	default:
		return fmt.Errorf("data_source.provider must be yahoo or file")
	}
	return nil
}

// Warnings reports soft policy inconsistencies: within-bucket weights not
// summing to 1.0, buckets with a target but no weights, or bucket targets
// exceeding 1.0 in total. None of these stop a run.
func (c *Config) Warnings() []string {
	var warnings []string
	targetSum := 0.0
	for bucket, bc := range c.Buckets {
		targetSum += bc.Target
		if len(bc.Weights) == 0 {
			warnings = append(warnings, fmt.Sprintf(
				"bucket %s has a target of %.2f but no within-bucket weights; its fraction stays unallocated",
				bucket, bc.Target))
			continue
		}
		sum := 0.0
		for _, w := range bc.Weights {
			sum += w
		}
		if math.Abs(sum-1.0) > 0.01 {
			warnings = append(warnings, fmt.Sprintf(
				"bucket %s within-bucket weights sum to %.2f, expected 1.00", bucket, sum))
		}
	}
	if targetSum > 1.0+1e-9 {
		warnings = append(warnings, fmt.Sprintf("bucket targets sum to %.2f, exceeding 1.00", targetSum))
	}
	return warnings
}

// ModelInstruments returns the basket in configured order.
func (c *Config) ModelInstruments() []model.Instrument {
	out := make([]model.Instrument, 0, len(c.Instruments))
	for _, inst := range c.Instruments {
		out = append(out, model.Instrument{
			Symbol: inst.Symbol,
			Ticker: inst.Ticker,
			Bucket: inst.Bucket,
		})
	}
	return out
}

// BucketTargets returns the bucket -> target-fraction mapping.
func (c *Config) BucketTargets() map[string]float64 {
	out := make(map[string]float64, len(c.Buckets))
	for bucket, bc := range c.Buckets {
		out[bucket] = bc.Target
	}
	return out
}

// WithinBucketWeights returns the bucket -> (symbol -> fraction) mapping,
// omitting buckets that define no weights.
func (c *Config) WithinBucketWeights() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(c.Buckets))
	for bucket, bc := range c.Buckets {
		if len(bc.Weights) == 0 {
			continue
		}
		weights := make(map[string]float64, len(bc.Weights))
		for symbol, w := range bc.Weights {
			weights[symbol] = w
		}
		out[bucket] = weights
	}
	return out
}
