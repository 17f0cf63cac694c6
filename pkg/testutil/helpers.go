// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/avelis/paydown/internal/schedule"
)

// FindRow finds the row for a given month in a schedule.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []schedule.Row, month int) *schedule.Row {
	for i := range rows {
		if rows[i].Month == month {
			return &rows[i]
		}
	}
	return nil
}
