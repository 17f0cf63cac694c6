// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"fmt"

	"github.com/avelis/paydown/internal/schedule"
	"github.com/avelis/paydown/pkg/constants"
	"github.com/avelis/paydown/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for paydown.
type Configuration struct {
	Plan    Plan          `yaml:"plan"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Plan holds the loan parameters and the ordered payment plan. The rate is
// configured as a percentage (12 means 12% per year) and converted to a
// fraction for the engine.
type Plan struct {
	Principal         float64   `yaml:"principal"`
	AnnualRatePercent float64   `yaml:"annualRatePercent"`
	Months            int       `yaml:"months"`
	DefaultPayment    float64   `yaml:"defaultPayment,omitempty"`
	Payments          []float64 `yaml:"payments,omitempty"` // index 0 = month 1
	StartDate         string    `yaml:"startDate,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// MonthCount returns the configured plan length clamped to at least one month.
func (p *Plan) MonthCount() int {
	if p.Months < constants.MinMonthCount {
		return constants.MinMonthCount
	}
	return p.Months
}

// RateFraction converts the configured annual percentage into the fraction
// the engine expects, clamped to non-negative.
func (p *Plan) RateFraction() float64 {
	if p.AnnualRatePercent < 0 {
		return 0
	}
	return p.AnnualRatePercent / constants.PercentageMultiplier
}

// NormalizedPayments resizes the payment plan to MonthCount, preserving
// entries by index: shrinking truncates, growing fills the new months with
// DefaultPayment (zero when unset). The configured slice is not mutated.
func (p *Plan) NormalizedPayments() []float64 {
	months := p.MonthCount()
	payments := make([]float64, months)
	for i := 0; i < months; i++ {
		if i < len(p.Payments) {
			payments[i] = p.Payments[i]
		} else {
			payments[i] = p.DefaultPayment
		}
	}
	return payments
}

// Parameters returns the engine inputs derived from the plan.
func (p *Plan) Parameters() schedule.Parameters {
	return schedule.Parameters{
		Principal:  p.Principal,
		AnnualRate: p.RateFraction(),
		MonthCount: p.MonthCount(),
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Nothing here is fatal: out-of-range values are clamped
// during normalization.
func (c *Configuration) ValidateConfiguration() []string {
	return validation.PlanWarnings(
		c.Plan.Principal,
		c.Plan.AnnualRatePercent,
		c.Plan.Months,
		c.Plan.Payments,
		c.Plan.StartDate,
	)
}
