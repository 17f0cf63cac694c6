package validation

import (
	"fmt"
	"time"

	"github.com/avelis/paydown/pkg/constants"
)

// PlanWarnings reports non-fatal issues with plan inputs. Out-of-range
// values are clamped rather than rejected before the schedule is computed,
// so every finding here surfaces as a warning only.
func PlanWarnings(principal, annualRatePercent float64, months int, payments []float64, startDate string) []string {
	var warnings []string

	if principal < 0 {
		warnings = append(warnings, fmt.Sprintf("principal %.2f is negative and will be treated as zero", principal))
	}
	if annualRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("annual rate %.2f%% is negative and will be treated as zero", annualRatePercent))
	}
	if annualRatePercent > constants.PercentageMultiplier {
		warnings = append(warnings, fmt.Sprintf("annual rate %.2f%% exceeds 100%%; verify the rate is a percentage, not a fraction", annualRatePercent))
	}
	if months < constants.MinMonthCount {
		warnings = append(warnings, fmt.Sprintf("month count %d is below %d and will be clamped", months, constants.MinMonthCount))
	}

	for i, payment := range payments {
		if payment < 0 {
			warnings = append(warnings, fmt.Sprintf("payment for month %d is negative and will be clamped to zero", i+1))
		}
	}
	if months >= constants.MinMonthCount && len(payments) > months {
		warnings = append(warnings, fmt.Sprintf("payment plan has %d entries but covers %d months; extra entries are ignored", len(payments), months))
	}

	if startDate != "" {
		if _, err := time.Parse(constants.MonthLayout, startDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("start date %q is not in YYYY-MM form; rows will be labelled by month number", startDate))
		}
	}

	return warnings
}
