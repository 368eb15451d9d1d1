package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockTracker/internal/cli"
	"StockTracker/internal/config"
	"StockTracker/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Credentials may live in a local .env file.
	envErr := godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tracker: load config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "tracker: config validation: %v\n", err)
		return 1
	}

	logger := logging.NewLogger(cfg.LogConfig())
	if envErr != nil {
		logger.Debug().Msg("no .env file found, using environment variables")
	}
	logger.Debug().Str("provider", cfg.Provider.Name).Msg("tracker starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(cli.NewApp(cfg, logger)).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "tracker: %v\n", err)
		return 1
	}
	return 0
}
