package strategy

import "PortfolioSentinel/internal/model"

// basket mirrors the default seven-instrument configuration.
var basket = []model.Instrument{
	{Symbol: "NIFTYBEES", Ticker: "NIFTYBEES.NS", Bucket: "India"},
	{Symbol: "BANKBEES", Ticker: "BANKBEES.NS", Bucket: "India"},
	{Symbol: "JUNIORBEES", Ticker: "JUNIORBEES.NS", Bucket: "India"},
	{Symbol: "MON100", Ticker: "MON100.NS", Bucket: "Global"},
	{Symbol: "GOLDBEES", Ticker: "GOLDBEES.NS", Bucket: "Metal"},
	{Symbol: "SILVERIETF", Ticker: "SILVERIETF.NS", Bucket: "Metal"},
	{Symbol: "LIQUIDBEES", Ticker: "LIQUIDBEES.NS", Bucket: "Safe"},
}

var defaultPolicy = BucketPolicy{
	Targets: map[string]float64{
		"India": 0.45, "Global": 0.10, "Metal": 0.25, "Safe": 0.20,
	},
	Weights: map[string]map[string]float64{
		"India":  {"NIFTYBEES": 0.5, "BANKBEES": 0.3, "JUNIORBEES": 0.2},
		"Global": {"MON100": 1.0},
		"Metal":  {"GOLDBEES": 0.6, "SILVERIETF": 0.4},
		"Safe":   {"LIQUIDBEES": 1.0},
	},
}

var defaultParams = Params{
	MomentumPct:    0.05,
	MaxTurnoverPct: 0.20,
	Deadband:       1000,
	SafeSymbol:     "LIQUIDBEES",
}

func present(latest, ma200, avg1y float64, r6m *float64) model.MetricsResult {
	return model.MetricsResult{
		Metrics: model.Metrics{
			LatestPrice:     latest,
			MA200:           ma200,
			TrailingYearAvg: avg1y,
			SixMonthReturn:  r6m,
		},
		Present: true,
	}
}

func pct(v float64) *float64 { return &v }

func absent() model.MetricsResult { return model.MetricsResult{} }
