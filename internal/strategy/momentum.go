package strategy

import (
	"fmt"
	"sort"

	"PortfolioSentinel/internal/model"
)

type momentumCandidate struct {
	Symbol string
	Return float64 // six-month return, percent
}

// SelectMomentum scans the basket for trend-qualifying instruments and
// awards the tactical slice to at most one of them.
//
// Eligibility: metrics present, not Overvalued, price above the 200-day
// average, and a positive six-month return. The safe instrument never
// competes. The winner is the highest six-month return; ties break
// lexicographically by symbol so runs are deterministic. When nothing
// qualifies, the slice parks in the safe instrument.
//
// The returned allocation has an entry for every instrument, all zero
// except the winner. The note is human-readable and always present.
func SelectMomentum(instruments []model.Instrument, metrics map[string]model.MetricsResult,
	valuations map[string]model.Valuation, safeSymbol string, momentumPct float64) (map[string]float64, string) {

	alloc := make(map[string]float64, len(instruments))
	for _, inst := range instruments {
		alloc[inst.Symbol] = 0.0
	}

	var candidates []momentumCandidate
	for _, inst := range instruments {
		if inst.Symbol == safeSymbol {
			continue
		}
		res := metrics[inst.Symbol]
		if !res.Present {
			continue
		}
		m := res.Metrics
		if valuations[inst.Symbol] == model.ValuationOvervalued {
			continue
		}
		if !m.Uptrend() {
			continue
		}
		if m.SixMonthReturn == nil || *m.SixMonthReturn <= 0 {
			continue
		}
		candidates = append(candidates, momentumCandidate{Symbol: inst.Symbol, Return: *m.SixMonthReturn})
	}

	if len(candidates) == 0 {
		alloc[safeSymbol] = momentumPct
		note := fmt.Sprintf("No momentum candidate -> tactical %.1f%% allocated to %s",
			momentumPct*100, safeSymbol)
		return alloc, note
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Return != candidates[j].Return {
			return candidates[i].Return > candidates[j].Return
		}
		return candidates[i].Symbol < candidates[j].Symbol
	})

	top := candidates[0]
	alloc[top.Symbol] = momentumPct
	note := fmt.Sprintf("Tactical target: %s (+%.1f%%) due to 6M return %.2f%%",
		top.Symbol, momentumPct*100, top.Return)
	return alloc, note
}
