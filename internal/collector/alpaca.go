package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/rs/zerolog"

	"StockTracker/internal/logging"
	"StockTracker/internal/model"
)

// barsClient is the subset of the Alpaca market data client used here.
type barsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaFetcher implements Fetcher using Alpaca daily bars adjusted for splits and dividends.
type AlpacaFetcher struct {
	client barsClient
	Logger zerolog.Logger
}

// NewAlpacaFetcher creates a fetcher backed by the Alpaca market data API.
// An empty baseURL selects Alpaca's default data host.
func NewAlpacaFetcher(apiKey, apiSecret, baseURL string, logger zerolog.Logger) *AlpacaFetcher {
	return &AlpacaFetcher{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
			BaseURL:   baseURL,
		}),
		Logger: logger,
	}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

// FetchQuotes returns the adjusted daily closes Alpaca reports for symbol between from and to.
func (f *AlpacaFetcher) FetchQuotes(ctx context.Context, symbol string, from, to time.Time) ([]model.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	bars, err := f.client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.All,
		Start:      from,
		End:        to,
	})
	if err != nil {
		err = fmt.Errorf("alpaca bars for %s: %w", symbol, err)
		logging.LogFetch(logging.WithSymbol(f.Logger, symbol), f.Name(), 0, time.Since(start), err)
		return nil, err
	}

	quotes := make([]model.Quote, 0, len(bars))
	for _, bar := range bars {
		quotes = append(quotes, model.Quote{
			Time:     bar.Timestamp,
			AdjClose: bar.Close,
		})
	}
	logging.LogFetch(logging.WithSymbol(f.Logger, symbol), f.Name(), len(quotes), time.Since(start), nil)
	return quotes, nil
}
