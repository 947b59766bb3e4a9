package notifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"PortfolioSentinel/internal/model"
)

// Money renders a currency amount with thousands separators, e.g. "₹103,076".
func Money(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-₹" + humanize.Comma(-n)
	}
	return "₹" + humanize.Comma(n)
}

// FormatAction renders the recommended action with its signed amount.
func FormatAction(t model.Trade) string {
	switch t.Action {
	case model.ActionBuy:
		return fmt.Sprintf("BUY %s", Money(t.Delta))
	case model.ActionSell:
		return fmt.Sprintf("SELL %s", Money(-t.Delta))
	default:
		return "HOLD"
	}
}

// FormatSnapshot formats the per-instrument market snapshot table.
func FormatSnapshot(plan *model.RebalancePlan, metrics map[string]model.MetricsResult) string {
	var b strings.Builder
	b.WriteString("📈 <b>Market snapshot:</b>\n")
	for _, t := range plan.Trades {
		res := metrics[t.Symbol]
		if !res.Present {
			b.WriteString(fmt.Sprintf("  %-12s No Data\n", t.Symbol))
			continue
		}
		m := res.Metrics
		uptrend := "no"
		if m.Uptrend() {
			uptrend = "yes"
		}
		r6m := "-"
		if m.SixMonthReturn != nil {
			r6m = fmt.Sprintf("%+.2f%%", *m.SixMonthReturn)
		}
		b.WriteString(fmt.Sprintf("  %-12s %9.2f | 200-DMA %9.2f | %-11s | uptrend %-3s | 6M %s\n",
			t.Symbol, m.LatestPrice, m.MA200, t.Valuation, uptrend, r6m))
	}
	return b.String()
}

// FormatReport renders the full rebalance report for console or Telegram.
func FormatReport(plan *model.RebalancePlan, metrics map[string]model.MetricsResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>PortfolioSentinel</b> | %s\n\n", plan.GeneratedAt.Format("2006-01-02")))
	b.WriteString(FormatSnapshot(plan, metrics))
	b.WriteString(fmt.Sprintf("\nTotal portfolio value (including cash): %s\n", Money(plan.TotalValue)))
	b.WriteString(fmt.Sprintf("\nTactical note: %s\n", plan.MomentumNote))

	b.WriteString("\n💰 <b>Recommendations:</b>\n")
	for _, t := range plan.Trades {
		b.WriteString(fmt.Sprintf("  %-12s %-7s %-11s %6.2f%% %12s → %-12s %s\n",
			t.Symbol, t.Bucket, t.Valuation, t.TargetWeight*100,
			Money(t.CurrentAmount), Money(t.TargetAmount), FormatAction(t)))
	}

	b.WriteString(fmt.Sprintf("\nTotal suggested BUY %s, total suggested SELL %s\n",
		Money(plan.TotalBuy), Money(plan.TotalSell)))

	if plan.TurnoverNote != "" {
		b.WriteString(fmt.Sprintf("\n⚠️ %s\n", plan.TurnoverNote))
	}

	return b.String()
}
