package strategy

import "PortfolioSentinel/internal/model"

// Valuation bands relative to the trailing-year average price.
const (
	overvaluedRatio  = 1.2
	undervaluedRatio = 0.9
)

// ClassifyValuation buckets an instrument's price level against its
// trailing-year average price.
func ClassifyValuation(latestPrice, trailingYearAvg float64) model.Valuation {
	switch {
	case latestPrice > trailingYearAvg*overvaluedRatio:
		return model.ValuationOvervalued
	case latestPrice < trailingYearAvg*undervaluedRatio:
		return model.ValuationUndervalued
	default:
		return model.ValuationFair
	}
}

// Valuations classifies every instrument in the basket. Instruments with
// absent metrics are marked NoData rather than excluded.
func Valuations(instruments []model.Instrument, metrics map[string]model.MetricsResult) map[string]model.Valuation {
	out := make(map[string]model.Valuation, len(instruments))
	for _, inst := range instruments {
		res := metrics[inst.Symbol]
		if !res.Present {
			out[inst.Symbol] = model.ValuationNoData
			continue
		}
		out[inst.Symbol] = ClassifyValuation(res.Metrics.LatestPrice, res.Metrics.TrailingYearAvg)
	}
	return out
}
