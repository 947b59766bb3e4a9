package strategy

import (
	"math"

	"PortfolioSentinel/internal/model"
)

// SizeTrades converts target weights into currency deltas against current
// holdings. Deltas inside the deadband are labeled HOLD but the delta is
// kept as computed so downstream turnover accounting stays exact.
func SizeTrades(instruments []model.Instrument, targets map[string]float64,
	holdings map[string]float64, totalValue, deadband float64,
	valuations map[string]model.Valuation) []model.Trade {

	trades := make([]model.Trade, 0, len(instruments))
	for _, inst := range instruments {
		weight := targets[inst.Symbol]
		targetAmount := totalValue * weight
		currentAmount := holdings[inst.Symbol]
		delta := targetAmount - currentAmount

		trades = append(trades, model.Trade{
			Symbol:        inst.Symbol,
			Bucket:        inst.Bucket,
			Valuation:     valuations[inst.Symbol],
			TargetWeight:  weight,
			CurrentAmount: currentAmount,
			TargetAmount:  targetAmount,
			Delta:         delta,
			Action:        classifyDelta(delta, deadband),
		})
	}
	return trades
}

// classifyDelta applies the no-trade deadband.
func classifyDelta(delta, deadband float64) model.Action {
	switch {
	case math.Abs(delta) < deadband:
		return model.ActionHold
	case delta > 0:
		return model.ActionBuy
	default:
		return model.ActionSell
	}
}
