package accounting

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SplitGross divides a tax-inclusive total into its pre-tax base and
// GST components for the given percent rate. The base is rounded to 2
// places and the tax is the remainder, so base + tax always equals the
// total exactly.
func SplitGross(total decimal.Decimal, gstPercent decimal.Decimal) (base, tax decimal.Decimal) {
	if gstPercent.IsZero() {
		return total, decimal.Zero
	}
	divisor := decimal.NewFromInt(1).Add(gstPercent.Div(hundred))
	base = total.Div(divisor).Round(2)
	tax = total.Sub(base)
	return base, tax
}
