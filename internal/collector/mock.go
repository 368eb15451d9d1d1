package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StockTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Quotes map[string][]model.Quote
	Errors map[string]error

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuotes(_ context.Context, symbol string, _, _ time.Time) ([]model.Quote, error) {
	m.mu.Lock()
	m.calls = append(m.calls, symbol)
	m.mu.Unlock()

	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	quotes, ok := m.Quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: unknown symbol %q", symbol)
	}
	return quotes, nil
}

// Calls returns the symbols requested so far, in call order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// GenerateQuotes builds count daily quotes ending the day before end, drifting
// upward from basePrice by 0.1% per day.
func GenerateQuotes(basePrice float64, count int, end time.Time) []model.Quote {
	quotes := make([]model.Quote, count)
	for i := 0; i < count; i++ {
		quotes[i] = model.Quote{
			Time:     end.AddDate(0, 0, -(count - i)),
			AdjClose: basePrice * (1 + float64(i)*0.001),
		}
	}
	return quotes
}
