// Command discrepancy-finder ingests HTML table reports and records the
// discrepancies found by validating them against a rule set.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/config/env"
	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driving/cli"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	settings, err := env.Load()
	if err != nil {
		logger.Error("Invalid configuration: %v", err)
		return err
	}
	logger.SetVerbose(settings.Verbose)

	return cli.Execute(ctx, newBootstrap(settings))
}
