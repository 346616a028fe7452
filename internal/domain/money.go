package domain

import "github.com/shopspring/decimal"

// ToMinorUnits converts a major-unit amount (e.g. 1234.50) to minor currency
// units (123450). Every amount handed to the gateway must pass through here;
// this is the single place the *100 conversion happens.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// FromMinorUnits converts minor currency units back to a major-unit amount,
// for display and cross-checks against totals.
func FromMinorUnits(minor int64) float64 {
	f, _ := decimal.NewFromInt(minor).
		Div(decimal.NewFromInt(100)).
		Float64()
	return f
}
