package collector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"StockTracker/internal/model"
)

// ErrDataUnavailable is returned when a provider cannot supply quotes for a symbol,
// whatever the underlying cause.
var ErrDataUnavailable = errors.New("data unavailable")

// Fetcher defines the interface for fetching daily quotes from a market-data provider.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	FetchQuotes(ctx context.Context, symbol string, from, to time.Time) ([]model.Quote, error)
	Name() string
}

// FetchHistory retrieves a symbol's quotes over [from, to] and returns its adjusted
// closes in chronological order. A provider returning no quotes is not an error.
func FetchHistory(ctx context.Context, f Fetcher, symbol string, from, to time.Time) (*model.StockHistory, error) {
	quotes, err := f.FetchQuotes(ctx, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, symbol, err)
	}

	closes := make([]float64, 0, len(quotes))
	if len(quotes) > 0 {
		sorted := make([]model.Quote, len(quotes))
		copy(sorted, quotes)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })
		for _, q := range sorted {
			closes = append(closes, q.AdjClose)
		}
	}

	return &model.StockHistory{Symbol: symbol, Closes: closes}, nil
}
