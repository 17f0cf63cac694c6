// Package output provides utilities for formatting and displaying schedules.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avelis/paydown/internal/schedule"
	"github.com/avelis/paydown/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable table of the schedule. When labels is
// non-empty it supplies a calendar label per row; otherwise rows are
// labelled by month number.
func PrettyFormat(w io.Writer, result schedule.Result, labels []string) {
	p := message.NewPrinter(language.English)
	_, _ = fmt.Fprintf(w, "Month   | Start Debt    | Interest   | Planned    | Applied    | End Debt\n")
	_, _ = fmt.Fprintf(w, "_____   | __________    | ________   | _______    | _______    | ________\n")
	for _, row := range result.Rows {
		_, _ = p.Fprintf(w, "%-7s | $%-12.2f | $%-9.2f | $%-9.2f | $%-9.2f | $%.2f\n",
			rowLabel(row.Month, labels), row.StartDebt, row.Interest,
			row.PaymentPlanned, row.PaymentApplied, row.EndDebt)
	}
	_, _ = fmt.Fprintf(w, "\nTotal interest: %s\n", format.Currency(result.TotalInterest))
	_, _ = fmt.Fprintf(w, "%s\n", Summary(result, labels))
}

// CsvFormat writes the schedule in comma-separated value format.
func CsvFormat(w io.Writer, result schedule.Result, labels []string) {
	_, _ = fmt.Fprintf(w, `"month","start debt","interest","payment planned","payment applied","end debt"`)
	_, _ = fmt.Fprintf(w, "\n")
	for _, row := range result.Rows {
		_, _ = fmt.Fprintf(w, `"%s","%s","%s","%s","%s","%s"`,
			rowLabel(row.Month, labels),
			format.NumericCurrency(row.StartDebt),
			format.NumericCurrency(row.Interest),
			format.NumericCurrency(row.PaymentPlanned),
			format.NumericCurrency(row.PaymentApplied),
			format.NumericCurrency(row.EndDebt))
		_, _ = fmt.Fprintf(w, "\n")
	}
}

// CsvString returns CsvFormat output as a string; the server embeds it in
// schedule responses so the form can offer a download.
func CsvString(result schedule.Result, labels []string) string {
	var b strings.Builder
	CsvFormat(&b, result, labels)
	return b.String()
}

// Summary returns a one-line outcome for the schedule: the payoff month
// when the plan retires the debt, otherwise the remaining balance.
func Summary(result schedule.Result, labels []string) string {
	if result.PaidOff() {
		return fmt.Sprintf("Paid off in month %s with %s total interest",
			rowLabel(result.PayoffMonth, labels), format.Currency(result.TotalInterest))
	}
	return fmt.Sprintf("Remaining debt after %d months: %s",
		len(result.Rows), format.Currency(result.RemainingDebt))
}

func rowLabel(month int, labels []string) string {
	if month >= 1 && month <= len(labels) {
		return labels[month-1]
	}
	return strconv.Itoa(month)
}
