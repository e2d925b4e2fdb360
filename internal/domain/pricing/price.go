package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// ComputePrice derives the final sale price from the supplier's raw cost
// fields. The inputs use the supplier's locale convention: "." as thousands
// separator and "," as decimal separator (e.g. "1.234,56"). Empty fields
// contribute zero. The result is truncated, not rounded, to 2 decimals;
// truncation is the agreed pricing policy.
//
//	base     = baseCost + fee
//	preTax   = base * (1 + marginPct/100)
//	final    = trunc2(preTax * (1 + taxRate/100))
func ComputePrice(baseCostRaw, feeRaw, marginPctRaw string, taxRate decimal.Decimal) (decimal.Decimal, error) {
	baseCost, err := parseLocaleDecimal(baseCostRaw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("base cost: %w", err)
	}
	fee, err := parseLocaleDecimal(feeRaw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fee: %w", err)
	}
	marginPct, err := parseLocaleDecimal(marginPctRaw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("margin: %w", err)
	}

	base := baseCost.Add(fee)
	preTax := base.Mul(one.Add(marginPct.Div(hundred)))
	final := preTax.Mul(one.Add(taxRate.Div(hundred)))
	return final.Truncate(2), nil
}

// parseLocaleDecimal normalizes a supplier numeric string ("12.345,67") to
// the canonical form ("12345.67") and parses it. Empty input is zero.
func parseLocaleDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "0"
	}
	normalized := strings.ReplaceAll(raw, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed numeric value %q", raw)
	}
	return value, nil
}
