package calculator

import (
	"math"
	"testing"
)

func TestTrailingYearAverage(t *testing.T) {
	// Shorter than a year: averages what is available.
	short := barsFromCloses([]float64{10, 20, 30})
	avg, err := TrailingYearAverage(short)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 20 {
		t.Errorf("expected 20, got %.2f", avg)
	}

	// Longer than a year: only the most recent 252 bars count.
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 999 // old bars that must be ignored
	}
	for i := 300 - 252; i < 300; i++ {
		closes[i] = 50
	}
	avg, err = TrailingYearAverage(barsFromCloses(closes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 50 {
		t.Errorf("expected 50, got %.2f", avg)
	}

	if _, err := TrailingYearAverage(nil); err == nil {
		t.Error("expected error for empty history")
	}
}

func TestSixMonthReturn(t *testing.T) {
	// Below the 130-bar minimum: no return.
	closes := make([]float64, 129)
	for i := range closes {
		closes[i] = 100
	}
	if r := SixMonthReturn(barsFromCloses(closes)); r != nil {
		t.Errorf("expected nil for short history, got %.2f", *r)
	}

	// Exactly at the minimum: return over the trailing 126 bars.
	closes = make([]float64, 130)
	for i := range closes {
		closes[i] = 100
	}
	closes[len(closes)-1] = 110
	r := SixMonthReturn(barsFromCloses(closes))
	if r == nil {
		t.Fatal("expected a return value")
	}
	if math.Abs(*r-10.0) > 1e-9 {
		t.Errorf("expected 10.0%%, got %.4f%%", *r)
	}
}
