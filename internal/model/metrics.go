package model

// Metrics holds derived price statistics for one instrument.
type Metrics struct {
	LatestPrice     float64
	MA200           float64
	TrailingYearAvg float64
	SixMonthReturn  *float64 // percent; nil when the history is too short
}

// Uptrend reports whether the latest price sits above the 200-day average.
func (m Metrics) Uptrend() bool {
	return m.LatestPrice > m.MA200
}

// MetricsResult is the present-or-absent outcome of a metrics fetch.
// A zero value means absent; downstream stages treat absence as a valid
// state rather than an error.
type MetricsResult struct {
	Metrics Metrics
	Present bool
}

// Valuation classifies an instrument's price level against its
// trailing-year average.
type Valuation string

const (
	ValuationNoData      Valuation = "No Data"
	ValuationOvervalued  Valuation = "Overvalued"
	ValuationUndervalued Valuation = "Undervalued"
	ValuationFair        Valuation = "Fair"
)
