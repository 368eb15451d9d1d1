package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"StockTracker/internal/collector"
	"StockTracker/internal/config"
	"StockTracker/internal/logging"
	"StockTracker/internal/recorder"
	"StockTracker/internal/report"
	"StockTracker/internal/scheduler"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Fetcher collector.Fetcher
	Now     func() time.Time
}

// NewApp wires the configured market-data provider.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		Config:  cfg,
		Logger:  logger,
		Fetcher: NewFetcher(cfg, logger),
		Now:     time.Now,
	}
}

// NewFetcher returns the provider selected in the configuration.
func NewFetcher(cfg *config.Config, logger zerolog.Logger) collector.Fetcher {
	if cfg.Provider.Name == config.ProviderAlpaca {
		a := cfg.Provider.Alpaca
		return collector.NewAlpacaFetcher(a.APIKey, a.APISecret, a.BaseURL, logger)
	}
	return collector.NewYahooFetcher(cfg.Provider.Yahoo.BaseURL, cfg.Provider.Proxy, cfg.Provider.Timeout, logger)
}

// ParseFrom parses the start of the reporting period.
func ParseFrom(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("couldn't parse the 'from' date %q: expected RFC 3339, e.g. 2020-07-01T00:00:00Z", s)
	}
	return t.UTC(), nil
}

func (a *App) recorder() recorder.Recorder {
	if a.Config.Report.WarnDropped {
		return recorder.NewLogRecorder(a.Logger)
	}
	return recorder.NewNoopRecorder()
}

// Run prints one report for the symbols starting at fromArg. With a cron
// schedule configured it keeps printing a report per tick until ctx is done.
func (a *App) Run(ctx context.Context, out io.Writer, symbolList, fromArg string) error {
	from, err := ParseFrom(fromArg)
	if err != nil {
		return err
	}
	symbols := collector.SplitSymbols(symbolList)

	col := collector.NewCollector(a.Fetcher, a.recorder(), logging.WithOperation(a.Logger, "collect"))
	col.MaxConcurrency = a.Config.Provider.MaxConcurrency

	job := func(ctx context.Context) error {
		to := a.Now()
		stats := col.Collect(ctx, symbols, from, to)
		return report.Write(out, from, stats)
	}

	if a.Config.Schedule.Cron == "" {
		return job(ctx)
	}

	sched := scheduler.NewScheduler(ctx, job, logging.WithOperation(a.Logger, "schedule"))
	if err := sched.Register(a.Config.Schedule.Cron); err != nil {
		return err
	}
	if err := sched.RunNow(); err != nil {
		return err
	}
	sched.Start()
	sched.Wait()
	return nil
}
