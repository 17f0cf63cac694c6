package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avelis/paydown/internal/config"
	"github.com/avelis/paydown/pkg/constants"
	"github.com/avelis/paydown/pkg/datetime"
	"github.com/avelis/paydown/pkg/output"
	"github.com/avelis/paydown/pkg/validation"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	configPath   string
	outputFormat string
	logLevel     string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "compute and print an amortization schedule" }
func (*scheduleCmd) Usage() string {
	return `paydown schedule [-config <file>] [-output-format pretty|csv] [-log-level <level>]

  Loads a payment plan from the config file, simulates month-by-month debt
  reduction, and prints the resulting schedule.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	f.StringVar(&c.outputFormat, "output-format", "", "type of output override: pretty, csv")
	f.StringVar(&c.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

func (c *scheduleCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	conf, err := config.LoadConfiguration(c.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration at %s: %v\n", c.configPath, err)
		return subcommands.ExitFailure
	}

	logger, err := initializeLogger(conf.Logging, c.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if c.outputFormat != "" {
		outputFormat = c.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main.schedule"),
		)
		return subcommands.ExitUsageError
	}

	// Validate the plan and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.schedule"),
		)
	}

	result := conf.Plan.Parameters().Compute(logger, conf.Plan.NormalizedPayments())
	labels := datetime.MonthLabels(conf.Plan.StartDate, len(result.Rows))

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, result, labels)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, result, labels)
	}

	return subcommands.ExitSuccess
}
