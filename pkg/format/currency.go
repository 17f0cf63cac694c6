// Package format provides currency display helpers. The display locale is
// fixed: US dollars with comma grouping.
package format

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/avelis/paydown/pkg/mathutil"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return money.New(mathutil.Cents(amount), money.USD).Display()
}

// NumericCurrency returns a plain two-decimal amount without a currency
// symbol or separators, suitable for CSV cells.
func NumericCurrency(amount float64) string {
	rounded := mathutil.RoundCents(amount)
	if rounded == 0 {
		// Normalize negative zero from rounding tiny negatives.
		rounded = math.Abs(rounded)
	}
	return fmt.Sprintf("%.2f", rounded)
}
