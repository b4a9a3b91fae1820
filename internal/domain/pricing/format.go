package pricing

import "github.com/shopspring/decimal"

var zeroEpsilon = decimal.New(1, -4)

// FormatPrice renders two decimals; values within 1e-4 of zero render as "0.00"
func FormatPrice(p decimal.Decimal) string {
	if p.Abs().LessThan(zeroEpsilon) {
		return "0.00"
	}
	return p.StringFixed(2)
}
