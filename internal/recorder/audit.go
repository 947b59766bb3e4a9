package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"PortfolioSentinel/internal/model"
)

// AuditWriter writes one delimited audit file per run into a folder:
// a timestamp line, a total-value line, a blank separator, then a header
// row and one data row per instrument.
type AuditWriter struct {
	dir string
	log zerolog.Logger
}

// NewAuditWriter creates the audit folder if needed.
func NewAuditWriter(dir string, log zerolog.Logger) (*AuditWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}
	return &AuditWriter{dir: dir, log: log.With().Str("component", "audit").Logger()}, nil
}

func (w *AuditWriter) RecordRun(plan *model.RebalancePlan) error {
	name := fmt.Sprintf("rebalance_%s.csv", plan.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create audit file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	records := [][]string{
		{"timestamp", plan.GeneratedAt.Format("2006-01-02T15:04:05")},
		{"total_value", formatAmount(plan.TotalValue)},
		{},
		{"ETF", "Bucket", "Valuation", "Target %", "Current", "Target", "Delta", "Action"},
	}
	for _, t := range plan.Trades {
		records = append(records, []string{
			t.Symbol,
			t.Bucket,
			string(t.Valuation),
			fmt.Sprintf("%.2f%%", t.TargetWeight*100),
			formatAmount(t.CurrentAmount),
			formatAmount(t.TargetAmount),
			formatAmount(t.Delta),
			string(t.Action),
		})
	}

	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write audit row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush audit file: %w", err)
	}

	w.log.Info().Str("path", path).Msg("audit log saved")
	return nil
}

func (w *AuditWriter) Close() error { return nil }

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
