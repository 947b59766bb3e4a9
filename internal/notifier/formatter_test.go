package notifier

import (
	"strings"
	"testing"
	"time"

	"PortfolioSentinel/internal/model"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{1000, "₹1,000"},
		{103076, "₹103,076"},
		{-28658.64, "-₹28,659"},
		{999.4, "₹999"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAction(t *testing.T) {
	buy := model.Trade{Action: model.ActionBuy, Delta: 38951.57}
	if got := FormatAction(buy); got != "BUY ₹38,952" {
		t.Errorf("got %q", got)
	}
	sell := model.Trade{Action: model.ActionSell, Delta: -28658.64}
	if got := FormatAction(sell); got != "SELL ₹28,659" {
		t.Errorf("got %q", got)
	}
	hold := model.Trade{Action: model.ActionHold, Delta: 500}
	if got := FormatAction(hold); got != "HOLD" {
		t.Errorf("got %q", got)
	}
}

func reportFixtures() (*model.RebalancePlan, map[string]model.MetricsResult) {
	r6m := 12.4
	plan := &model.RebalancePlan{
		RunID:       "test-run",
		GeneratedAt: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
		TotalValue:  347281,
		Trades: []model.Trade{
			{
				Symbol: "NIFTYBEES", Bucket: "India", Valuation: model.ValuationFair,
				TargetWeight: 0.2143, CurrentAmount: 103076, TargetAmount: 74417,
				Delta: -28659, Action: model.ActionSell,
			},
			{
				Symbol: "MON100", Bucket: "Global", Valuation: model.ValuationFair,
				TargetWeight: 0.1429, CurrentAmount: 10660, TargetAmount: 49612,
				Delta: 38952, Action: model.ActionBuy,
			},
			{
				Symbol: "SILVERIETF", Bucket: "Metal", Valuation: model.ValuationNoData,
				TargetWeight: 0.0952, Action: model.ActionHold,
			},
		},
		TotalBuy:     38952,
		TotalSell:    28659,
		MomentumNote: "Tactical target: MON100 (+5.0%) due to 6M return 12.40%",
	}
	metrics := map[string]model.MetricsResult{
		"NIFTYBEES": {
			Metrics: model.Metrics{LatestPrice: 280, MA200: 290, TrailingYearAvg: 275},
			Present: true,
		},
		"MON100": {
			Metrics: model.Metrics{LatestPrice: 155, MA200: 140, TrailingYearAvg: 148, SixMonthReturn: &r6m},
			Present: true,
		},
	}
	return plan, metrics
}

func TestFormatSnapshot(t *testing.T) {
	plan, metrics := reportFixtures()
	out := FormatSnapshot(plan, metrics)

	if !strings.Contains(out, "SILVERIETF") || !strings.Contains(out, "No Data") {
		t.Error("instruments without metrics must still appear as No Data rows")
	}
	if !strings.Contains(out, "+12.40%") {
		t.Error("six-month return should be rendered with sign and percent")
	}
	if !strings.Contains(out, "uptrend yes") {
		t.Error("MON100 trades above its 200-DMA")
	}
	if !strings.Contains(out, "uptrend no") {
		t.Error("NIFTYBEES trades below its 200-DMA")
	}
}

func TestFormatReport(t *testing.T) {
	plan, metrics := reportFixtures()
	out := FormatReport(plan, metrics)

	for _, want := range []string{
		"2026-08-24",
		"Total portfolio value (including cash): ₹347,281",
		"Tactical target: MON100",
		"BUY ₹38,952",
		"SELL ₹28,659",
		"HOLD",
		"Total suggested BUY ₹38,952, total suggested SELL ₹28,659",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "⚠️") {
		t.Error("no turnover warning expected when the cap is not hit")
	}

	plan.TurnoverNote = "Turnover exceeds cap (proposed ₹304,518 > limit ₹69,456). Scaling trades by 22.8%"
	out = FormatReport(plan, metrics)
	if !strings.Contains(out, "⚠️ Turnover exceeds cap") {
		t.Error("turnover note should be surfaced with a warning marker")
	}
}
