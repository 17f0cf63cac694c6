// Package schedule implements the amortization engine: a pure,
// deterministic simulation of month-by-month debt reduction. Each month
// charges interest on the opening balance, capitalizes it into the amount
// owed, and then applies the planned payment, capped at what is owed so a
// payment never drives the debt negative.
package schedule

import (
	"fmt"

	"github.com/avelis/paydown/pkg/constants"
	"github.com/avelis/paydown/pkg/mathutil"
	"go.uber.org/zap"
)

// Parameters are the immutable loan inputs for a schedule.
type Parameters struct {
	Principal  float64
	AnnualRate float64 // fraction per year, e.g. 0.12 for 12%
	MonthCount int
}

// Row records one simulated month of debt reduction. Rows are produced only
// by Compute and never mutated after creation.
type Row struct {
	Month          int     // 1-based position in the schedule
	StartDebt      float64 // balance before interest for the month
	Interest       float64 // interest charged on StartDebt
	PaymentPlanned float64 // payment from the plan, clamped to non-negative
	PaymentApplied float64 // payment actually applied, capped at what is owed
	EndDebt        float64 // balance carried into the next month
}

// Result holds the full ordered schedule plus summary totals.
type Result struct {
	Rows          []Row
	TotalInterest float64
	PayoffMonth   int // first month the balance reaches zero; 0 when it never does
	RemainingDebt float64
}

// PaidOff reports whether the plan retires the debt.
func (r Result) PaidOff() bool {
	return r.PayoffMonth > 0
}

// Compute simulates month-by-month debt reduction for the given principal,
// annual rate (as a fraction), and ordered payment plan. It is a pure
// function: it does not mutate payments, performs no I/O, and identical
// inputs always yield identical output. There is no failure mode; every
// input combination produces a valid result.
//
// Interest for a month is always charged on the opening balance before the
// payment is applied, including the payoff month; there is no pro-rating
// within a month. The simulation stops as soon as the debt reaches zero,
// so the schedule never has more rows than there are payments.
func Compute(logger *zap.Logger, principal, annualRate float64, payments []float64) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	debt := principal
	var result Result

	for i := 0; i < len(payments); i++ {
		if debt <= 0 {
			break
		}
		month := i + 1
		startDebt := debt
		interest := startDebt * monthlyRate
		result.TotalInterest += interest

		owed := startDebt + interest
		paymentPlanned := mathutil.Max(payments[i], 0)
		paymentApplied := mathutil.Min(paymentPlanned, owed)
		endDebt := mathutil.Max(owed-paymentApplied, 0)

		result.Rows = append(result.Rows, Row{
			Month:          month,
			StartDebt:      startDebt,
			Interest:       interest,
			PaymentPlanned: paymentPlanned,
			PaymentApplied: paymentApplied,
			EndDebt:        endDebt,
		})

		debt = endDebt
		if debt == 0 && result.PayoffMonth == 0 {
			result.PayoffMonth = month
			logger.Debug(fmt.Sprintf("debt retired at month %d with final payment %.2f", month, paymentApplied),
				zap.String("op", "schedule.Compute"),
			)
		}
	}

	result.RemainingDebt = debt
	return result
}

// Compute resizes payments to p.MonthCount, truncating when the plan is
// longer and zero-extending when it is shorter, then runs the engine.
// Existing entries are preserved by index.
func (p Parameters) Compute(logger *zap.Logger, payments []float64) Result {
	return Compute(logger, mathutil.Max(p.Principal, 0), p.AnnualRate, p.Resize(payments))
}

// Resize returns payments adjusted to p.MonthCount. The input slice is
// never mutated.
func (p Parameters) Resize(payments []float64) []float64 {
	months := p.MonthCount
	if months < constants.MinMonthCount {
		months = constants.MinMonthCount
	}
	resized := make([]float64, months)
	copy(resized, payments)
	return resized
}
