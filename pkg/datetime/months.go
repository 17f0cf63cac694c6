// Package datetime provides month-label utilities for schedule output.
package datetime

import (
	"time"

	"github.com/avelis/paydown/pkg/constants"
)

// MonthLayout is the calendar label format, e.g. "2026-01".
const MonthLayout = constants.MonthLayout

// OffsetMonth returns the label offset by the given number of months
// relative to the given label.
func OffsetMonth(label string, months int) (string, error) {
	t, err := time.Parse(MonthLayout, label)
	if err != nil {
		return label, err
	}
	return t.AddDate(0, months, 0).Format(MonthLayout), nil
}

// MonthLabels returns n consecutive calendar labels starting at start.
// Returns nil when start is empty or not in YYYY-MM form, in which case
// callers fall back to numeric month indices.
func MonthLabels(start string, n int) []string {
	if start == "" || n <= 0 {
		return nil
	}
	if _, err := time.Parse(MonthLayout, start); err != nil {
		return nil
	}
	labels := make([]string, n)
	labels[0] = start
	for i := 1; i < n; i++ {
		labels[i], _ = OffsetMonth(start, i)
	}
	return labels
}
