package format

import (
	"math"
	"testing"
)

func TestAmount(t *testing.T) {
	f := Default()
	cases := []struct {
		in   float64
		want string
	}{
		{298500, "₹298,500"},
		{0, "₹0"},
		{1234567, "₹1,234,567"},
		{999, "₹999"},
		{1234.5, "₹1,234.50"},
	}
	for _, tc := range cases {
		if got := f.Amount(tc.in); got != tc.want {
			t.Fatalf("Amount(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountNonFinite(t *testing.T) {
	if got := Default().Amount(math.Inf(1)); got != "₹—" {
		t.Fatalf("Amount(+Inf)=%q", got)
	}
}

func TestGrowth(t *testing.T) {
	f := Default()
	cases := []struct {
		in   float64
		want string
	}{
		{8.4615, "+8.5%"},
		{-2, "-2.0%"},
		{0, "0.0%"},
		{math.NaN(), "n/a"},
	}
	for _, tc := range cases {
		if got := f.Growth(tc.in); got != tc.want {
			t.Fatalf("Growth(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Default().Percent(81.2766); got != "81.3%" {
		t.Fatalf("Percent=%q, want 81.3%%", got)
	}
}

func TestNewInvalidLocaleFallsBack(t *testing.T) {
	f := New("???", "$")
	if got := f.Amount(1000); got != "$1,000" {
		t.Fatalf("Amount=%q, want $1,000", got)
	}
}
