package collector

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"StockTracker/internal/calculator"
	"StockTracker/internal/model"
	"StockTracker/internal/recorder"
)

// ErrNoQuotes marks a symbol whose fetch succeeded but returned no prices.
var ErrNoQuotes = errors.New("no quotes in range")

// Collector orchestrates concurrent fetching and statistics for a set of symbols.
type Collector struct {
	Fetcher  Fetcher
	Recorder recorder.Recorder
	Logger   zerolog.Logger

	// MaxConcurrency caps in-flight fetches; zero or less means one per symbol.
	MaxConcurrency int
}

// NewCollector creates a new Collector. A nil recorder drops symbols silently.
func NewCollector(fetcher Fetcher, rec recorder.Recorder, logger zerolog.Logger) *Collector {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Collector{Fetcher: fetcher, Recorder: rec, Logger: logger}
}

// SplitSymbols splits a comma-separated symbol list. Whitespace is kept as given.
func SplitSymbols(list string) []string {
	return strings.Split(list, ",")
}

// Collect fetches every symbol over [from, to] and returns statistics for those
// that produced at least one price, in the order the symbols were given.
// Symbols that fail or return no data are passed to the recorder and left out.
func (c *Collector) Collect(ctx context.Context, symbols []string, from, to time.Time) []model.StockStats {
	histories := c.fetchAll(ctx, symbols, from, to)
	stats := c.computeAll(histories)

	c.Logger.Info().
		Str("provider", c.Fetcher.Name()).
		Int("requested", len(symbols)).
		Int("reported", len(stats)).
		Msg("collection finished")
	return stats
}

func (c *Collector) fetchAll(ctx context.Context, symbols []string, from, to time.Time) []*model.StockHistory {
	results := make([]*model.StockHistory, len(symbols))
	errs := make([]error, len(symbols))

	var g errgroup.Group
	if c.MaxConcurrency > 0 {
		g.SetLimit(c.MaxConcurrency)
	}
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			// Failures stay in their slot so one bad symbol never cancels the rest.
			results[i], errs[i] = FetchHistory(ctx, c.Fetcher, symbol, from, to)
			return nil
		})
	}
	_ = g.Wait()

	survivors := make([]*model.StockHistory, 0, len(symbols))
	for i, symbol := range symbols {
		switch {
		case errs[i] != nil:
			c.Recorder.RecordDropped(symbol, errs[i])
		case len(results[i].Closes) == 0:
			c.Recorder.RecordDropped(symbol, ErrNoQuotes)
		default:
			survivors = append(survivors, results[i])
		}
	}
	return survivors
}

func (c *Collector) computeAll(histories []*model.StockHistory) []model.StockStats {
	stats := make([]model.StockStats, len(histories))

	var g errgroup.Group
	for i, h := range histories {
		i, h := i, h
		g.Go(func() error {
			stats[i] = calculator.NewStockStats(h.Symbol, h.Closes)
			return nil
		})
	}
	_ = g.Wait()
	return stats
}
