package calculator

import (
	"errors"
	"math"
	"testing"

	"revenueplatform/internal/model"
)

func TestTotalsForSampleQ1(t *testing.T) {
	q1 := model.SampleRecords()[0]

	got := TotalsFor(q1)
	if got.TaxTotal != 243500 {
		t.Fatalf("TaxTotal=%v, want 243500", got.TaxTotal)
	}
	if got.NonTaxTotal != 55000 {
		t.Fatalf("NonTaxTotal=%v, want 55000", got.NonTaxTotal)
	}
	if got.Total != 298500 {
		t.Fatalf("Total=%v, want 298500", got.Total)
	}
}

func TestTotalsForTotalIsSumOfParts(t *testing.T) {
	records := append(model.SampleRecords(), model.SubstituteRecords()...)
	records = append(records, model.RevenueRecord{Period: "empty"})

	for _, r := range records {
		got := TotalsFor(r)
		if got.Total != got.TaxTotal+got.NonTaxTotal {
			t.Fatalf("%s: total %v != %v + %v", r.Period, got.Total, got.TaxTotal, got.NonTaxTotal)
		}
	}
}

func TestTotalsForMissingFieldsAreZero(t *testing.T) {
	r := model.RevenueRecord{
		Period:        "partial",
		NonTaxRevenue: model.NonTaxRevenue{Mining: 100},
	}
	got := TotalsFor(r)
	if got.TaxTotal != 0 || got.NonTaxTotal != 100 || got.Total != 100 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestGrowthRateQ2OverQ1(t *testing.T) {
	samples := model.SampleRecords()
	q1, q2 := samples[0], samples[1]

	got, err := GrowthRate(q2, &q1)
	if err != nil {
		t.Fatalf("GrowthRate failed: %v", err)
	}

	q2Total := TotalsFor(q2).Total
	if q2Total != 325000 {
		t.Fatalf("Q2 total=%v, want 325000", q2Total)
	}
	want := (q2Total - 298500) / 298500 * 100
	if got != want {
		t.Fatalf("growth=%v, want %v", got, want)
	}
	if got <= 0 {
		t.Fatalf("growth should be positive, got %v", got)
	}
}

func TestGrowthRateWithoutPrevious(t *testing.T) {
	got, err := GrowthRate(model.SampleRecords()[0], nil)
	if err != nil {
		t.Fatalf("GrowthRate failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("growth=%v, want 0", got)
	}
}

func TestGrowthRateZeroBaseline(t *testing.T) {
	prev := model.RevenueRecord{Period: "Q0 2024"}
	got, err := GrowthRate(model.SampleRecords()[0], &prev)
	if !errors.Is(err, ErrZeroBaseline) {
		t.Fatalf("expected ErrZeroBaseline, got %v", err)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("growth must stay finite, got %v", got)
	}
}

func TestTrendSeries(t *testing.T) {
	points := TrendSeries(model.SampleRecords())
	if len(points) != 3 {
		t.Fatalf("len=%d, want 3", len(points))
	}

	wantPeriods := []string{"Q1 2024", "Q2 2024", "Q3 2024"}
	wantTotals := []float64{298500, 325000, 352500}
	for i, p := range points {
		if p.Period != wantPeriods[i] {
			t.Fatalf("points[%d].Period=%q, want %q", i, p.Period, wantPeriods[i])
		}
		if p.Total != wantTotals[i] {
			t.Fatalf("points[%d].Total=%v, want %v", i, p.Total, wantTotals[i])
		}
		if p.Total != p.TaxRevenue+p.NonTaxRevenue {
			t.Fatalf("points[%d] total mismatch", i)
		}
	}
}

func TestTrendSeriesEmpty(t *testing.T) {
	points := TrendSeries(nil)
	if points == nil {
		t.Fatalf("TrendSeries(nil) should return an empty slice, got nil")
	}
	if len(points) != 0 {
		t.Fatalf("len=%d, want 0", len(points))
	}
}

func TestBreakdownCommercialMatchesTotals(t *testing.T) {
	for _, r := range append(model.SampleRecords(), model.SubstituteRecords()...) {
		slices, err := BreakdownSeries(r, SelectorCommercialTaxes)
		if err != nil {
			t.Fatalf("BreakdownSeries failed: %v", err)
		}
		if len(slices) != 5 {
			t.Fatalf("len=%d, want 5", len(slices))
		}
		if got, want := SumSlices(slices), CommercialTotal(r); got != want {
			t.Fatalf("%s: commercial breakdown sum %v != %v", r.Period, got, want)
		}
	}
}

func TestBreakdownTaxCategoriesSumToTaxTotal(t *testing.T) {
	r := model.SampleRecords()[2]
	slices, err := BreakdownSeries(r, SelectorTaxCategories)
	if err != nil {
		t.Fatalf("BreakdownSeries failed: %v", err)
	}
	if len(slices) != 6 {
		t.Fatalf("len=%d, want 6", len(slices))
	}
	if got, want := SumSlices(slices), TotalsFor(r).TaxTotal; got != want {
		t.Fatalf("tax breakdown sum %v != %v", got, want)
	}
	if slices[0].Name != "Commercial Taxes" || slices[0].Value != 151500 {
		t.Fatalf("unexpected first slice: %+v", slices[0])
	}
}

func TestBreakdownNonTaxSources(t *testing.T) {
	r := model.SampleRecords()[0]
	slices, err := BreakdownSeries(r, SelectorNonTaxSources)
	if err != nil {
		t.Fatalf("BreakdownSeries failed: %v", err)
	}
	if got := SumSlices(slices); got != 55000 {
		t.Fatalf("non-tax sum=%v, want 55000", got)
	}
}

func TestBreakdownUnknownSelector(t *testing.T) {
	_, err := BreakdownSeries(model.SampleRecords()[0], Selector("other"))
	if !errors.Is(err, ErrUnknownSelector) {
		t.Fatalf("expected ErrUnknownSelector, got %v", err)
	}
}

func TestLatestBreakdownEmpty(t *testing.T) {
	_, err := LatestBreakdown(nil, SelectorTaxCategories)
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestLatestBreakdownUsesLastRecord(t *testing.T) {
	slices, err := LatestBreakdown(model.SampleRecords(), SelectorNonTaxSources)
	if err != nil {
		t.Fatalf("LatestBreakdown failed: %v", err)
	}
	if slices[0].Value != 42000 {
		t.Fatalf("mining=%v, want 42000 (Q3)", slices[0].Value)
	}
}
