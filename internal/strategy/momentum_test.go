package strategy

import (
	"strings"
	"testing"

	"PortfolioSentinel/internal/model"
)

func countNonZero(alloc map[string]float64) int {
	n := 0
	for _, v := range alloc {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestSelectMomentum_PicksHighestReturn(t *testing.T) {
	metrics := map[string]model.MetricsResult{
		"NIFTYBEES": present(110, 100, 105, pct(8.5)),
		"MON100":    present(120, 100, 110, pct(15.2)),
		"GOLDBEES":  present(105, 100, 103, pct(3.1)),
	}
	vals := Valuations(basket, metrics)

	alloc, note := SelectMomentum(basket, metrics, vals, "LIQUIDBEES", 0.05)

	if alloc["MON100"] != 0.05 {
		t.Errorf("expected MON100 to win the tactical slice, got %v", alloc)
	}
	if countNonZero(alloc) != 1 {
		t.Errorf("expected exactly one nonzero allocation, got %d", countNonZero(alloc))
	}
	if !strings.Contains(note, "MON100") || !strings.Contains(note, "15.2") {
		t.Errorf("note should name the winner and its return: %q", note)
	}
}

func TestSelectMomentum_Eligibility(t *testing.T) {
	tests := []struct {
		name    string
		metrics model.MetricsResult
	}{
		{"absent metrics", absent()},
		{"overvalued", present(130, 100, 100, pct(20))},
		{"downtrend", present(95, 100, 95, pct(12))},
		{"no six-month return", present(110, 100, 105, nil)},
		{"negative six-month return", present(110, 100, 105, pct(-2))},
		{"zero six-month return", present(110, 100, 105, pct(0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := map[string]model.MetricsResult{"NIFTYBEES": tt.metrics}
			vals := Valuations(basket, metrics)

			alloc, note := SelectMomentum(basket, metrics, vals, "LIQUIDBEES", 0.05)

			if alloc["NIFTYBEES"] != 0 {
				t.Errorf("instrument should be ineligible, got allocation %v", alloc["NIFTYBEES"])
			}
			if alloc["LIQUIDBEES"] != 0.05 {
				t.Errorf("tactical slice should fall back to the safe instrument")
			}
			if !strings.Contains(note, "No momentum candidate") {
				t.Errorf("expected fallback note, got %q", note)
			}
		})
	}
}

func TestSelectMomentum_SafeInstrumentNeverCompetes(t *testing.T) {
	// The safe instrument has a spectacular return; it still cannot win.
	metrics := map[string]model.MetricsResult{
		"LIQUIDBEES": present(110, 100, 105, pct(99)),
	}
	vals := Valuations(basket, metrics)

	alloc, note := SelectMomentum(basket, metrics, vals, "LIQUIDBEES", 0.05)

	if alloc["LIQUIDBEES"] != 0.05 {
		t.Errorf("expected fallback allocation, got %v", alloc)
	}
	if !strings.Contains(note, "No momentum candidate") {
		t.Errorf("the safe allocation must come from the fallback path, got %q", note)
	}
}

func TestSelectMomentum_TieBreaksLexicographically(t *testing.T) {
	metrics := map[string]model.MetricsResult{
		"SILVERIETF": present(110, 100, 105, pct(7.0)),
		"GOLDBEES":   present(110, 100, 105, pct(7.0)),
	}
	vals := Valuations(basket, metrics)

	alloc, _ := SelectMomentum(basket, metrics, vals, "LIQUIDBEES", 0.05)

	if alloc["GOLDBEES"] != 0.05 {
		t.Errorf("expected GOLDBEES to win the tie, got %v", alloc)
	}
	if alloc["SILVERIETF"] != 0 {
		t.Errorf("only one instrument may hold the tactical slice")
	}
}
