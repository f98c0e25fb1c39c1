package calculator

import (
	"errors"
	"testing"

	"revenueplatform/internal/model"
)

func TestBuildOverviewSample(t *testing.T) {
	ov, err := BuildOverview(model.SampleRecords())
	if err != nil {
		t.Fatalf("BuildOverview failed: %v", err)
	}

	if ov.Period != "Q3 2024" || ov.PreviousPeriod != "Q2 2024" {
		t.Fatalf("unexpected periods: %q / %q", ov.Period, ov.PreviousPeriod)
	}
	if ov.Current.Total != 352500 {
		t.Fatalf("current total=%v, want 352500", ov.Current.Total)
	}
	if ov.Previous == nil || ov.Previous.Total != 325000 {
		t.Fatalf("unexpected previous totals: %+v", ov.Previous)
	}
	if ov.Growth == nil {
		t.Fatalf("growth should be set")
	}
	want := (352500.0 - 325000.0) / 325000.0 * 100
	if *ov.Growth != want {
		t.Fatalf("growth=%v, want %v", *ov.Growth, want)
	}
	if ov.CommercialTotal != SumSlices(ov.CommercialBreakdown) {
		t.Fatalf("commercial card %v != breakdown sum %v", ov.CommercialTotal, SumSlices(ov.CommercialBreakdown))
	}
}

func TestBuildOverviewSingleRecord(t *testing.T) {
	ov, err := BuildOverview(model.SubstituteRecords())
	if err != nil {
		t.Fatalf("BuildOverview failed: %v", err)
	}
	if ov.Previous != nil {
		t.Fatalf("previous should be nil for a single record")
	}
	if ov.Growth == nil || *ov.Growth != 0 {
		t.Fatalf("growth should be 0 without a previous record, got %v", ov.Growth)
	}
	if ov.Current.Total != 385000 {
		t.Fatalf("Q4 total=%v, want 385000", ov.Current.Total)
	}
}

func TestBuildOverviewZeroBaseline(t *testing.T) {
	records := []model.RevenueRecord{{Period: "Q0 2024"}, model.SampleRecords()[0]}
	ov, err := BuildOverview(records)
	if err != nil {
		t.Fatalf("BuildOverview failed: %v", err)
	}
	if ov.Growth != nil {
		t.Fatalf("growth should be nil for a zero baseline, got %v", *ov.Growth)
	}

	groups := Cards(ov)
	if groups[0].Indicators[0].Note != "Insufficient data for growth" {
		t.Fatalf("unexpected note: %q", groups[0].Indicators[0].Note)
	}
}

func TestBuildOverviewEmpty(t *testing.T) {
	if _, err := BuildOverview(nil); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestBuildChartsSample(t *testing.T) {
	ch, err := BuildCharts(model.SampleRecords())
	if err != nil {
		t.Fatalf("BuildCharts failed: %v", err)
	}
	if len(ch.Trend) != 3 || len(ch.Comparison) != 3 {
		t.Fatalf("unexpected series lengths: %d / %d", len(ch.Trend), len(ch.Comparison))
	}
	if len(ch.TaxBreakdown) != 6 || len(ch.CommercialBreakdown) != 5 || len(ch.NonTaxBreakdown) != 3 {
		t.Fatalf("unexpected breakdown lengths")
	}

	// Q3 非税：42000 / 66000 = 63.6%
	if got := ch.NonTaxBreakdown[0].Percent; got != 63.6 {
		t.Fatalf("mining share=%v, want 63.6", got)
	}
}

func TestBuildChartsEmpty(t *testing.T) {
	if _, err := BuildCharts([]model.RevenueRecord{}); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestCardsSample(t *testing.T) {
	ov, err := BuildOverview(model.SampleRecords())
	if err != nil {
		t.Fatalf("BuildOverview failed: %v", err)
	}

	groups := Cards(ov)
	if len(groups) != 2 {
		t.Fatalf("len(groups)=%d, want 2", len(groups))
	}

	values := map[string]float64{}
	for _, g := range groups {
		for _, it := range g.Indicators {
			values[it.ID] = it.Value
		}
	}

	cases := map[string]float64{
		"total":       352500,
		"tax":         286500,
		"nonTax":      66000,
		"commercial":  151500,
		"growth":      8.5,
		"taxShare":    81.3,
		"nonTaxShare": 18.7,
	}
	for id, want := range cases {
		if got := values[id]; got != want {
			t.Fatalf("%s=%v, want %v", id, got, want)
		}
	}
}

func TestShareZeroTotal(t *testing.T) {
	if got := Share(10, 0); got != 0 {
		t.Fatalf("Share(10, 0)=%v, want 0", got)
	}
}
