package collector

import "PortfolioSentinel/internal/model"

// Fetcher defines the interface for fetching price history.
type Fetcher interface {
	FetchDailyBars(ticker string, days int) ([]model.OHLCV, error)
	Name() string
}
