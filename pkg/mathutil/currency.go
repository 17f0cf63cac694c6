// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/avelis/paydown/pkg/constants"
	"github.com/shopspring/decimal"
)

// RoundCents rounds a value to two decimals, i.e. to represent real currency.
// Decimal arithmetic avoids the float artifacts of math.Round(x*100)/100 on
// values that sit exactly on a half cent.
func RoundCents(val float64) float64 {
	rounded, _ := decimal.NewFromFloat(val).Round(2).Float64()
	return rounded
}

// Cents converts a major-unit amount into whole minor units.
func Cents(val float64) int64 {
	return decimal.NewFromFloat(val).Shift(2).Round(0).IntPart()
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
