package strategy

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"PortfolioSentinel/internal/model"
)

// ApplyTurnoverCap measures total proposed trade volume against the cap
// and, when exceeded, uniformly scales every delta and re-classifies the
// actions with the same deadband. Scaling shrinks magnitudes only; signs
// are preserved. Zero proposed turnover skips the cap entirely.
//
// Returns the (possibly rewritten) trades, a note describing the scaling
// (empty when none occurred), and the applied scale factor (1.0 when
// untouched).
func ApplyTurnoverCap(trades []model.Trade, totalValue, maxTurnoverPct, deadband float64) ([]model.Trade, string, float64) {
	proposed := 0.0
	for _, t := range trades {
		proposed += math.Abs(t.Delta)
	}
	limit := maxTurnoverPct * totalValue
	if proposed == 0 || proposed <= limit {
		return trades, "", 1.0
	}

	scale := limit / proposed
	scaled := make([]model.Trade, len(trades))
	for i, t := range trades {
		d := t.Delta * scale
		t.Delta = d
		t.TargetAmount = t.CurrentAmount + d
		t.Action = classifyDelta(d, deadband)
		scaled[i] = t
	}

	note := fmt.Sprintf("Turnover exceeds cap (proposed ₹%s > limit ₹%s). Scaling trades by %.1f%%",
		humanize.Comma(int64(math.Round(proposed))),
		humanize.Comma(int64(math.Round(limit))),
		scale*100)
	return scaled, note, scale
}
