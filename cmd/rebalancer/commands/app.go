package commands

import (
	"fmt"

	"github.com/rs/zerolog"

	"PortfolioSentinel/internal/collector"
	"PortfolioSentinel/internal/config"
	"PortfolioSentinel/internal/logging"
	"PortfolioSentinel/internal/notifier"
	"PortfolioSentinel/internal/portfolio"
	"PortfolioSentinel/internal/recorder"
	"PortfolioSentinel/internal/strategy"
)

// app wires the components shared by the run and schedule commands.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	collector *collector.Collector
	engine    *strategy.Engine
	recorder  recorder.Recorder
	notifier  *notifier.TelegramNotifier
}

func buildApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	logCfg := logging.Config{Level: cfg.Logging.Level, Pretty: *cfg.Logging.Pretty}
	if verbose {
		logCfg.Level = "debug"
	}
	log := logging.New(logCfg)
	for _, w := range cfg.Warnings() {
		log.Warn().Msg(w)
	}

	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "file":
		fetcher = collector.NewFileFetcher(cfg.DataSource.FileDir)
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	policy := strategy.BucketPolicy{
		Targets: cfg.BucketTargets(),
		Weights: cfg.WithinBucketWeights(),
	}
	params := strategy.Params{
		MomentumPct:    cfg.Portfolio.MomentumPct,
		MaxTurnoverPct: cfg.Portfolio.MaxTurnoverPct,
		Deadband:       cfg.Portfolio.Deadband,
		SafeSymbol:     cfg.Portfolio.SafeSymbol,
	}

	var rec recorder.Recorder
	if dryRun {
		rec = recorder.NewNoopRecorder()
		log.Info().Msg("dry run: audit log and run history will not be written")
	} else {
		audit, err := recorder.NewAuditWriter(cfg.Audit.Dir, log)
		if err != nil {
			return nil, fmt.Errorf("init audit writer: %w", err)
		}
		recorders := []recorder.Recorder{audit}
		if cfg.Database.SQLitePath != "" {
			sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
			if err != nil {
				log.Warn().Err(err).Msg("init sqlite recorder failed, run history disabled")
			} else {
				recorders = append(recorders, sr)
			}
		}
		rec = recorder.NewMulti(recorders...)
	}

	return &app{
		cfg:       cfg,
		log:       log,
		collector: collector.NewCollector(fetcher, log),
		engine:    strategy.NewEngine(cfg.ModelInstruments(), policy, params, log),
		recorder:  rec,
		notifier:  notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log),
	}, nil
}

// runOnce executes one full cycle (holdings, metrics, plan, record) and
// returns the formatted report.
func (a *app) runOnce() (string, error) {
	holdings, err := portfolio.Load(a.cfg.Portfolio.HoldingsFile)
	if err != nil {
		return "", err
	}
	if _, ok := holdings.Amounts[a.cfg.Portfolio.CashSymbol]; !ok {
		a.log.Warn().Str("symbol", a.cfg.Portfolio.CashSymbol).
			Msg("holdings file has no cash position, total value may be understated")
	}
	a.log.Info().Float64("total_value", holdings.TotalValue()).Msg("holdings loaded")

	metrics := a.collector.Collect(a.cfg.ModelInstruments())
	plan := a.engine.Run(metrics, holdings.Amounts)

	if err := a.recorder.RecordRun(plan); err != nil {
		a.log.Error().Err(err).Msg("record run")
	}
	return notifier.FormatReport(plan, metrics), nil
}

func (a *app) Close() {
	if err := a.recorder.Close(); err != nil {
		a.log.Error().Err(err).Msg("close recorder")
	}
}
