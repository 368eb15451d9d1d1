package calculator

import "StockTracker/internal/model"

// NewStockStats summarises a symbol's closing prices. Any signal without a
// result falls back to zero, so an empty series produces an all-zero record.
func NewStockStats(symbol string, closes []float64) model.StockStats {
	stats := model.StockStats{Symbol: symbol}

	if len(closes) > 0 {
		stats.LastPrice = closes[len(closes)-1]
	}
	if _, rel, ok := PriceDiff(closes); ok {
		stats.PctChange = rel
	}
	if v, ok := Min(closes); ok {
		stats.PeriodMin = v
	}
	if v, ok := Max(closes); ok {
		stats.PeriodMax = v
	}
	if v, ok := LastSMA(ThirtyDayWindow, closes); ok {
		stats.ThirtyDayAvg = v
	}
	return stats
}
