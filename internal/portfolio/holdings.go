package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Holdings is the user-maintained current position state in currency
// amounts, including the cash pseudo-instrument. The engine never mutates
// it; the user edits the file between runs.
type Holdings struct {
	Amounts   map[string]float64 `json:"holdings"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// TotalValue sums every position including cash.
func (h *Holdings) TotalValue() float64 {
	total := 0.0
	for _, amount := range h.Amounts {
		total += amount
	}
	return total
}

// Load reads holdings from a JSON file. A missing file is an error: trades
// cannot be sized without current positions.
func Load(path string) (*Holdings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holdings: %w", err)
	}
	var h Holdings
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parse holdings: %w", err)
	}
	if len(h.Amounts) == 0 {
		return nil, fmt.Errorf("holdings file %s has no positions", path)
	}
	return &h, nil
}
