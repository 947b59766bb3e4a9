package collector

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"PortfolioSentinel/internal/calculator"
	"PortfolioSentinel/internal/model"
)

// fetchDays covers roughly three trading years, enough for the 252-day
// average plus headroom.
const fetchDays = 750

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.OHLCV
	Errs map[string]error

	Price float64 // base price for generated bars when Bars has no entry
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(ticker string, days int) ([]model.OHLCV, error) {
	if err, ok := m.Errs[ticker]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[ticker]; ok {
		return bars, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

// GenerateMockBars produces a gently rising synthetic series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches price history and derives per-instrument metrics.
// It is the gate between the engine and the market-data source: any
// per-instrument failure degrades that instrument to an absent result
// instead of failing the run.
type Collector struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, log zerolog.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		log:     log.With().Str("component", "collector").Logger(),
	}
}

// Collect computes metrics for every instrument in the basket.
func (c *Collector) Collect(instruments []model.Instrument) map[string]model.MetricsResult {
	out := make(map[string]model.MetricsResult, len(instruments))
	for _, inst := range instruments {
		m, err := c.collectOne(inst)
		if err != nil {
			c.log.Warn().Str("symbol", inst.Symbol).Err(err).Msg("metrics unavailable")
			out[inst.Symbol] = model.MetricsResult{}
			continue
		}
		out[inst.Symbol] = model.MetricsResult{Metrics: m, Present: true}
	}
	return out
}

func (c *Collector) collectOne(inst model.Instrument) (model.Metrics, error) {
	bars, err := c.fetcher.FetchDailyBars(inst.Ticker, fetchDays)
	if err != nil {
		return model.Metrics{}, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return model.Metrics{}, errors.New("no price history")
	}

	latest := bars[len(bars)-1].Close

	// A history shorter than 200 bars cannot produce an MA200; fall back to
	// the latest price, which never signals an uptrend under the strict
	// comparison. Valuation and the trailing average stay usable.
	ma200, err := calculator.CalculateMA200(bars)
	if err != nil {
		c.log.Warn().Str("symbol", inst.Symbol).Err(err).Msg("ma200 unavailable, using latest price")
		ma200 = latest
	}

	avg1y, err := calculator.TrailingYearAverage(bars)
	if err != nil {
		return model.Metrics{}, fmt.Errorf("trailing year average: %w", err)
	}

	return model.Metrics{
		LatestPrice:     latest,
		MA200:           ma200,
		TrailingYearAvg: avg1y,
		SixMonthReturn:  calculator.SixMonthReturn(bars), // nil is fine, history may be short
	}, nil
}
