package calculator

import (
	"errors"

	"PortfolioSentinel/internal/model"
)

const (
	trailingYearWindow = 252 // trading days in one year

	sixMonthLookback = 126 // trading days in six months
	sixMonthMinBars  = 130 // minimum history before a six-month return is meaningful
)

// TrailingYearAverage returns the mean close over the most recent 252
// trading days. Shorter histories average whatever is available.
func TrailingYearAverage(dailyBars []model.OHLCV) (float64, error) {
	if len(dailyBars) == 0 {
		return 0, errors.New("no daily bars provided")
	}
	closes := extractCloses(dailyBars)
	start := len(closes) - trailingYearWindow
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, c := range closes[start:] {
		sum += c
	}
	return sum / float64(len(closes)-start), nil
}

// SixMonthReturn returns the percentage return over the trailing 126
// trading days, or nil when fewer than 130 bars of history exist.
func SixMonthReturn(dailyBars []model.OHLCV) *float64 {
	if len(dailyBars) < sixMonthMinBars {
		return nil
	}
	closes := extractCloses(dailyBars)
	base := closes[len(closes)-sixMonthLookback]
	if base == 0 {
		return nil
	}
	r := (closes[len(closes)-1] - base) / base * 100
	return &r
}
