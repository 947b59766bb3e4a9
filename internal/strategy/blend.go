package strategy

import "PortfolioSentinel/internal/model"

// BlendTargets merges core and tactical weights per instrument and
// normalizes the total down to 1.0 when it overshoots.
//
// An Overvalued valuation zeroes only the tactical term; the core weight
// stands, overriding it is the policy's business. A total below 1.0 is
// left alone — the remainder is implicitly cash.
func BlendTargets(instruments []model.Instrument, core, tactical map[string]float64,
	valuations map[string]model.Valuation) map[string]float64 {

	targets := make(map[string]float64, len(instruments))
	sum := 0.0
	for _, inst := range instruments {
		t := tactical[inst.Symbol]
		if valuations[inst.Symbol] == model.ValuationOvervalued {
			t = 0.0
		}
		w := core[inst.Symbol] + t
		targets[inst.Symbol] = w
		sum += w
	}

	if sum > 1.0 {
		for symbol := range targets {
			targets[symbol] /= sum
		}
	}
	return targets
}
