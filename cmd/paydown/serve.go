package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/avelis/paydown/internal/server"
	"github.com/avelis/paydown/pkg/constants"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	configPath string
	address    string
	logLevel   string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the schedule web form and API" }
func (*serveCmd) Usage() string {
	return `paydown serve [-config <file>] [-address <addr>] [-log-level <level>]

  Serves the debt paydown web form. The form recomputes its schedule through
  the JSON API on every input change; nothing is persisted between requests.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", constants.DefaultServerConfigFile, "path to server configuration file")
	f.StringVar(&c.address, "address", "", "listen address override (e.g. :8080)")
	f.StringVar(&c.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, err := server.LoadConfig(c.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load server configuration at %s: %v\n", c.configPath, err)
		return subcommands.ExitFailure
	}
	if c.address != "" {
		cfg.Address = c.address
	}

	logger, err := initializeLogger(cfg.Logging, c.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      server.NewHandler(logger, cfg.BodySizeBytes(), version),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("serving web form",
		zap.String("op", "main.serve"),
		zap.String("address", cfg.Address),
		zap.Int64("maxBodySize", cfg.BodySizeBytes()),
	)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped",
			zap.String("op", "main.serve"),
			zap.Error(err),
		)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
