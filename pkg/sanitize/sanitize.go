// Package sanitize normalizes raw form input before it reaches the schedule
// engine. Malformed text coerces to zero (or the minimum month count) rather
// than producing an error; the engine is total over its inputs so nothing
// downstream needs to handle a failure.
package sanitize

import (
	"strconv"
	"strings"

	"github.com/avelis/paydown/pkg/constants"
)

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Amount parses a minor-unit-free integer amount from free-form text, e.g.
// "$1,200" becomes 1200. Text with no digits coerces to zero.
func Amount(s string) float64 {
	digits := Digits(s)
	if digits == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// Percent parses a percentage from free-form text, tolerating a single
// decimal point, e.g. "12.5 %" becomes 12.5. Negative signs are stripped
// with the rest of the noise, so results are always non-negative.
func Percent(s string) float64 {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// MonthCount parses a positive month count from free-form text, clamping to
// at least one month.
func MonthCount(s string) int {
	digits := Digits(s)
	if digits == "" {
		return constants.MinMonthCount
	}
	parsed, err := strconv.Atoi(digits)
	if err != nil || parsed < constants.MinMonthCount {
		return constants.MinMonthCount
	}
	return parsed
}
