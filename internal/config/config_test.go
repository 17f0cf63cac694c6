package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
plan:
  principal: 1200
  annualRatePercent: 12
  months: 12
  defaultPayment: 112
  payments: [112, 150]
  startDate: "2026-01"
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}

	if conf.Plan.Principal != 1200 {
		t.Errorf("Principal = %.2f, want 1200", conf.Plan.Principal)
	}
	if conf.Plan.AnnualRatePercent != 12 {
		t.Errorf("AnnualRatePercent = %.2f, want 12", conf.Plan.AnnualRatePercent)
	}
	if conf.Plan.Months != 12 {
		t.Errorf("Months = %d, want 12", conf.Plan.Months)
	}
	if !reflect.DeepEqual(conf.Plan.Payments, []float64{112, 150}) {
		t.Errorf("Payments = %v, want [112 150]", conf.Plan.Payments)
	}
	if conf.Plan.StartDate != "2026-01" {
		t.Errorf("StartDate = %q, want 2026-01", conf.Plan.StartDate)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, want csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadConfiguration() error = nil, want error for missing file")
	}
}

func TestNormalizedPayments(t *testing.T) {
	tests := []struct {
		name     string
		plan     Plan
		expected []float64
	}{
		{
			name:     "extend with default payment",
			plan:     Plan{Months: 4, DefaultPayment: 112, Payments: []float64{100}},
			expected: []float64{100, 112, 112, 112},
		},
		{
			name:     "extend with zero when default unset",
			plan:     Plan{Months: 3, Payments: []float64{100}},
			expected: []float64{100, 0, 0},
		},
		{
			name:     "truncate preserves by index",
			plan:     Plan{Months: 2, Payments: []float64{1, 2, 3, 4}},
			expected: []float64{1, 2},
		},
		{
			name:     "months clamped to one",
			plan:     Plan{Months: 0, DefaultPayment: 5},
			expected: []float64{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.plan.NormalizedPayments()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizedPayments() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRateFraction(t *testing.T) {
	plan := Plan{AnnualRatePercent: 12}
	if got := plan.RateFraction(); got != 0.12 {
		t.Errorf("RateFraction() = %v, want 0.12", got)
	}

	plan = Plan{AnnualRatePercent: -5}
	if got := plan.RateFraction(); got != 0 {
		t.Errorf("RateFraction() = %v, want 0 for negative rate", got)
	}
}

func TestParameters(t *testing.T) {
	plan := Plan{Principal: 1200, AnnualRatePercent: 12, Months: 0}
	params := plan.Parameters()

	if params.Principal != 1200 {
		t.Errorf("Principal = %.2f, want 1200", params.Principal)
	}
	if params.AnnualRate != 0.12 {
		t.Errorf("AnnualRate = %v, want 0.12", params.AnnualRate)
	}
	if params.MonthCount != 1 {
		t.Errorf("MonthCount = %d, want 1 (clamped)", params.MonthCount)
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := Configuration{
		Plan: Plan{
			Principal:         -100,
			AnnualRatePercent: 150,
			Months:            0,
			Payments:          []float64{100, -50},
			StartDate:         "January",
		},
	}

	warnings := conf.ValidateConfiguration()
	expectedFragments := []string{
		"principal",
		"exceeds 100%",
		"month count 0",
		"month 2 is negative",
		"start date",
	}
	for _, fragment := range expectedFragments {
		found := false
		for _, warning := range warnings {
			if strings.Contains(warning, fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no warning mentioning %q in %v", fragment, warnings)
		}
	}

	clean := Configuration{Plan: Plan{Principal: 100, AnnualRatePercent: 5, Months: 12}}
	if warnings := clean.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ValidateConfiguration() = %v, want no warnings", warnings)
	}
}
