package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputePrice(t *testing.T) {
	cases := []struct {
		name     string
		baseCost string
		fee      string
		margin   string
		taxRate  string
		want     string
	}{
		{
			name:     "locale thousands separator",
			baseCost: "12.000,00",
			fee:      "0",
			margin:   "0",
			taxRate:  "0",
			want:     "12000",
		},
		{
			name:     "tax applied",
			baseCost: "10,00",
			fee:      "0",
			margin:   "0",
			taxRate:  "21",
			want:     "12.1",
		},
		{
			name:     "fee added before margin",
			baseCost: "10,00",
			fee:      "2,00",
			margin:   "50",
			taxRate:  "0",
			want:     "18",
		},
		{
			// 10 * 1.0743 * 1.21 = 12.99903; rounding would give 13.00
			name:     "truncates instead of rounding",
			baseCost: "10,00",
			fee:      "0",
			margin:   "7,43",
			taxRate:  "21",
			want:     "12.99",
		},
		{
			// 19.999 must floor to 19.99, never 20.00
			name:     "truncation boundary",
			baseCost: "19,999",
			fee:      "0",
			margin:   "0",
			taxRate:  "0",
			want:     "19.99",
		},
		{
			name:     "empty fields contribute zero",
			baseCost: "",
			fee:      "",
			margin:   "",
			taxRate:  "21",
			want:     "0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputePrice(tc.baseCost, tc.fee, tc.margin, dec(tc.taxRate))
			if err != nil {
				t.Fatalf("ComputePrice: %v", err)
			}
			if !got.Equal(dec(tc.want)) {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestComputePriceDeterministic(t *testing.T) {
	first, err := ComputePrice("1.234,56", "7,89", "12,5", dec("21"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := ComputePrice("1.234,56", "7,89", "12,5", dec("21"))
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) {
		t.Fatalf("non-deterministic price: %s vs %s", first, second)
	}
	if first.Exponent() < -2 {
		t.Fatalf("price %s not truncated to 2 decimals", first)
	}
}

func TestComputePriceMalformed(t *testing.T) {
	if _, err := ComputePrice("not a number", "0", "0", dec("21")); err == nil {
		t.Fatal("expected error for malformed base cost")
	}
	if _, err := ComputePrice("10,00", "x", "0", dec("21")); err == nil {
		t.Fatal("expected error for malformed fee")
	}
	if _, err := ComputePrice("10,00", "0", "1,2,3", dec("21")); err == nil {
		t.Fatal("expected error for malformed margin")
	}
}
