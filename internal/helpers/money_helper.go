package helpers

import "github.com/shopspring/decimal"

// RoundMoney rounds a monetary amount to 2 decimal places, half away from
// zero on the minor unit. Every amount entering or leaving the engine goes
// through here; intermediate arithmetic keeps full precision.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// WithinOnePenny reports whether two amounts differ by at most 0.01.
// Because net, vat and gross are each rounded independently, gross can sit
// a penny off net+vat; reconciliation tolerates exactly that much.
func WithinOnePenny(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(decimal.New(1, -2))
}
