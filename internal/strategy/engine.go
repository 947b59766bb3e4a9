package strategy

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"PortfolioSentinel/internal/model"
)

// Params holds the per-run scalar configuration of the engine.
type Params struct {
	MomentumPct    float64 // tactical slice, e.g. 0.05
	MaxTurnoverPct float64 // per-run turnover cap, e.g. 0.20
	Deadband       float64 // no-trade threshold in currency units
	SafeSymbol     string  // cash-equivalent fallback for the tactical slice
}

// Engine computes a full rebalance plan from policy, metrics, and holdings.
// It holds no mutable state; every run is an independent computation.
type Engine struct {
	instruments []model.Instrument
	policy      BucketPolicy
	params      Params
	log         zerolog.Logger
}

// NewEngine creates a new Engine for the configured basket.
func NewEngine(instruments []model.Instrument, policy BucketPolicy, params Params, log zerolog.Logger) *Engine {
	return &Engine{
		instruments: instruments,
		policy:      policy,
		params:      params,
		log:         log.With().Str("component", "engine").Logger(),
	}
}

// Run executes the allocation pipeline: core targets, momentum overlay,
// blending with the overvaluation override, trade sizing against current
// holdings, and the turnover cap. Holdings must include the cash
// pseudo-instrument; totalPortfolioValue is their sum.
func (e *Engine) Run(metrics map[string]model.MetricsResult, holdings map[string]float64) *model.RebalancePlan {
	totalValue := 0.0
	for _, amount := range holdings {
		totalValue += amount
	}

	valuations := Valuations(e.instruments, metrics)
	core := BuildCoreTargets(e.policy)
	tactical, momentumNote := SelectMomentum(e.instruments, metrics, valuations,
		e.params.SafeSymbol, e.params.MomentumPct)
	targets := BlendTargets(e.instruments, core, tactical, valuations)
	trades := SizeTrades(e.instruments, targets, holdings, totalValue, e.params.Deadband, valuations)
	trades, turnoverNote, scale := ApplyTurnoverCap(trades, totalValue,
		e.params.MaxTurnoverPct, e.params.Deadband)

	totalBuy, totalSell := 0.0, 0.0
	for _, t := range trades {
		switch t.Action {
		case model.ActionBuy:
			totalBuy += t.Delta
		case model.ActionSell:
			totalSell += -t.Delta
		}
	}

	plan := &model.RebalancePlan{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now(),
		TotalValue:    totalValue,
		Trades:        trades,
		TotalBuy:      totalBuy,
		TotalSell:     totalSell,
		MomentumNote:  momentumNote,
		TurnoverNote:  turnoverNote,
		TurnoverScale: scale,
	}

	e.log.Info().
		Str("run_id", plan.RunID).
		Float64("total_value", totalValue).
		Float64("total_buy", totalBuy).
		Float64("total_sell", totalSell).
		Float64("turnover_scale", scale).
		Msg("rebalance plan computed")
	return plan
}
