package mortgage

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits kept when a division or a
// schedule constant has to be rounded. Rounding is half-up.
const Scale = 8

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
	bp     = decimal.New(1, -4) // one basis point
)

// MonthlyRate converts an annual nominal rate into the monthly rate used by
// the calculators: annual / 12 rounded half-up to Scale digits.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.DivRound(twelve, Scale)
}

// BasisPoints returns a benchmark rate shifted by a spread expressed in basis
// points. Mortgage rates are quoted this way, e.g. LPR + 105bp:
//
//	BasisPoints(decimal.RequireFromString("0.046"), 105) // 0.0565
func BasisPoints(benchmark decimal.Decimal, spread int64) decimal.Decimal {
	return benchmark.Add(bp.Mul(decimal.NewFromInt(spread)))
}
