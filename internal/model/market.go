package model

import "time"

// Quote is a single daily record returned by a market-data provider.
type Quote struct {
	Time     time.Time
	AdjClose float64
}

// StockHistory pairs a symbol with its adjusted closes, oldest first.
type StockHistory struct {
	Symbol string
	Closes []float64
}

// StockStats is the per-symbol summary printed in the report.
type StockStats struct {
	Symbol       string
	LastPrice    float64
	PctChange    float64
	PeriodMin    float64
	PeriodMax    float64
	ThirtyDayAvg float64
}
