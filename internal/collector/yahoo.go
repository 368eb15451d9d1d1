package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"StockTracker/internal/logging"
	"StockTracker/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance query host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
	Logger  zerolog.Logger
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(baseURL, proxyURL string, timeout time.Duration, logger zerolog.Logger) *YahooFetcher {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	return &YahooFetcher{
		BaseURL: baseURL,
		Client:  newHTTPClient(proxyURL, timeout),
		Logger:  logger,
	}
}

func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (f *YahooFetcher) chartURL(symbol string, from, to time.Time) string {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(from.Unix(), 10))
	q.Set("period2", strconv.FormatInt(to.Unix(), 10))
	q.Set("interval", "1d")
	q.Set("events", "div|split")
	q.Set("includeAdjustedClose", "true")
	return fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(symbol), q.Encode())
}

// FetchQuotes returns the daily adjusted closes Yahoo reports for symbol between from and to.
// Days Yahoo reports without a price (holidays, halts) are skipped.
func (f *YahooFetcher) FetchQuotes(ctx context.Context, symbol string, from, to time.Time) ([]model.Quote, error) {
	start := time.Now()
	quotes, err := f.fetchChart(ctx, symbol, from, to)
	logging.LogFetch(logging.WithSymbol(f.Logger, symbol), f.Name(), len(quotes), time.Since(start), err)
	return quotes, err
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol string, from, to time.Time) ([]model.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.chartURL(symbol, from, to), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return []model.Quote{}, nil
	}

	result := chart.Chart.Result[0]

	// Prefer the adjusted series; fall back to raw closes when Yahoo omits it.
	var prices []*float64
	if len(result.Indicators.AdjClose) > 0 {
		prices = result.Indicators.AdjClose[0].AdjClose
	} else if len(result.Indicators.Quote) > 0 {
		prices = result.Indicators.Quote[0].Close
	}
	if len(prices) != len(result.Timestamp) {
		return nil, fmt.Errorf("yahoo: %d timestamps but %d prices", len(result.Timestamp), len(prices))
	}

	quotes := make([]model.Quote, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if prices[i] == nil {
			continue
		}
		quotes = append(quotes, model.Quote{
			Time:     time.Unix(ts, 0).UTC(),
			AdjClose: *prices[i],
		})
	}
	return quotes, nil
}
