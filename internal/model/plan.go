package model

import "time"

// Action is the recommended move for one instrument.
type Action string

const (
	ActionHold Action = "HOLD"
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Trade is the per-instrument recommendation produced by a run.
type Trade struct {
	Symbol        string
	Bucket        string
	Valuation     Valuation
	TargetWeight  float64 // fraction of total portfolio value, post-normalization
	CurrentAmount float64
	TargetAmount  float64
	Delta         float64 // signed; kept even when the action is HOLD
	Action        Action
}

// RebalancePlan is the final output of one engine run.
type RebalancePlan struct {
	RunID         string
	GeneratedAt   time.Time
	TotalValue    float64
	Trades        []Trade // configured instrument order
	TotalBuy      float64
	TotalSell     float64
	MomentumNote  string
	TurnoverNote  string  // empty unless the turnover cap triggered
	TurnoverScale float64 // 1.0 when no scaling occurred
}
