package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
portfolio:
  safe_symbol: LIQUIDBEES
instruments:
  - symbol: NIFTYBEES
    ticker: NIFTYBEES.NS
    bucket: India
  - symbol: LIQUIDBEES
    ticker: LIQUIDBEES.NS
    bucket: Safe
buckets:
  India:
    target: 0.8
    weights:
      NIFTYBEES: 1.0
  Safe:
    target: 0.2
    weights:
      LIQUIDBEES: 1.0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "CASH", cfg.Portfolio.CashSymbol)
	assert.Equal(t, 0.05, cfg.Portfolio.MomentumPct)
	assert.Equal(t, 0.20, cfg.Portfolio.MaxTurnoverPct)
	assert.Equal(t, 1000.0, cfg.Portfolio.Deadband)
	assert.Equal(t, "data/holdings.json", cfg.Portfolio.HoldingsFile)
	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, "0 0 9 * * 1", cfg.Schedule.Cron)
	assert.Equal(t, "rebalance_logs", cfg.Audit.Dir)
	assert.Equal(t, "data/portfolio_sentinel.db", cfg.Database.SQLitePath)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NotNil(t, cfg.Logging.Pretty)
	assert.True(t, *cfg.Logging.Pretty)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-from-env")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("HOLDINGS_FILE", "/tmp/holdings.json")
	t.Setenv("CRON_SCHEDULE", "0 30 9 * * 5")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "token-from-env", cfg.Telegram.BotToken)
	assert.Equal(t, "42", cfg.Telegram.ChatID)
	assert.Equal(t, "/tmp/holdings.json", cfg.Portfolio.HoldingsFile)
	assert.Equal(t, "0 30 9 * * 5", cfg.Schedule.Cron)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeConfig(t, sampleYAML))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no instruments", func(c *Config) { c.Instruments = nil }, "at least one instrument"},
		{"missing ticker", func(c *Config) { c.Instruments[0].Ticker = "" }, "ticker is required"},
		{"duplicate symbol", func(c *Config) { c.Instruments[1].Symbol = "NIFTYBEES" }, "duplicate symbol"},
		{"no safe symbol", func(c *Config) { c.Portfolio.SafeSymbol = "" }, "safe_symbol is required"},
		{"unknown safe symbol", func(c *Config) { c.Portfolio.SafeSymbol = "GOLDBEES" }, "not a configured instrument"},
		{"momentum out of range", func(c *Config) { c.Portfolio.MomentumPct = 1.5 }, "momentum_pct"},
		{"turnover out of range", func(c *Config) { c.Portfolio.MaxTurnoverPct = 1.5 }, "max_turnover_pct"},
		{"negative deadband", func(c *Config) { c.Portfolio.Deadband = -1 }, "deadband"},
		{"weight references stranger", func(c *Config) {
			c.Buckets["India"].Weights["GHOST"] = 0.5
		}, "unknown instrument"},
		{"file provider needs dir", func(c *Config) {
			c.DataSource.Provider = "file"
			c.DataSource.FileDir = ""
		}, "file_dir is required"},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }, "yahoo or file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings())

	cfg.Buckets["India"] = BucketConfig{
		Target:  0.8,
		Weights: map[string]float64{"NIFTYBEES": 0.7},
	}
	cfg.Buckets["Ghost"] = BucketConfig{Target: 0.4}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0]+warnings[1]+warnings[2], "stays unallocated")
	assert.Contains(t, warnings[0]+warnings[1]+warnings[2], "weights sum to 0.70")
	assert.Contains(t, warnings[0]+warnings[1]+warnings[2], "exceeding 1.00")
}

func TestPolicyHelpers(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	instruments := cfg.ModelInstruments()
	require.Len(t, instruments, 2)
	assert.Equal(t, "NIFTYBEES", instruments[0].Symbol)
	assert.Equal(t, "India", instruments[0].Bucket)

	targets := cfg.BucketTargets()
	assert.Equal(t, 0.8, targets["India"])

	weights := cfg.WithinBucketWeights()
	assert.Equal(t, 1.0, weights["Safe"]["LIQUIDBEES"])
}
