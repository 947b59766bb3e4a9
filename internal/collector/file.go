package collector

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"PortfolioSentinel/internal/model"
)

// FileFetcher implements Fetcher from local CSV exports, one file per
// ticker, for offline runs and backfills. Expected columns:
// date,open,high,low,close,volume with an ISO date in the first column.
type FileFetcher struct {
	Dir string
}

// NewFileFetcher creates a fetcher reading <dir>/<ticker>.csv files.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{Dir: dir}
}

func (f *FileFetcher) Name() string { return "file" }

// FetchDailyBars reads and parses the ticker's CSV file, most recent bar last.
func (f *FileFetcher) FetchDailyBars(ticker string, days int) ([]model.OHLCV, error) {
	path := filepath.Join(f.Dir, ticker+".csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse price file %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("price file %s has no data rows", path)
	}

	bars := make([]model.OHLCV, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		if len(rec) < 6 {
			return nil, fmt.Errorf("price file %s row %d: expected 6 columns, got %d", path, i+2, len(rec))
		}
		t, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			return nil, fmt.Errorf("price file %s row %d: %w", path, i+2, err)
		}
		vals := make([]float64, 5)
		for j := 1; j <= 5; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("price file %s row %d col %d: %w", path, i+2, j+1, err)
			}
			vals[j-1] = v
		}
		bars = append(bars, model.OHLCV{
			Time:   t,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
