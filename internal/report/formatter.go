// Package report renders collected statistics as comma-separated rows.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"StockTracker/internal/model"
)

// Header is the first line of every report.
const Header = "period start,symbol,price,change %,min,max,30d avg"

// timestampLayout renders UTC as +00:00 and omits zero fractional seconds.
const timestampLayout = "2006-01-02T15:04:05.999999999-07:00"

// FormatTimestamp renders the period start in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// FormatRow formats one symbol's statistics. The change column carries the
// relative difference as computed, without scaling to percent.
func FormatRow(from time.Time, s model.StockStats) string {
	return fmt.Sprintf("%s,%s,$%.2f,%.2f%%,$%.2f,$%.2f,$%.2f",
		FormatTimestamp(from),
		s.Symbol,
		s.LastPrice,
		s.PctChange,
		s.PeriodMin,
		s.PeriodMax,
		s.ThirtyDayAvg,
	)
}

// Write prints the header followed by one row per statistics record.
func Write(w io.Writer, from time.Time, stats []model.StockStats) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, s := range stats {
		if _, err := fmt.Fprintln(bw, FormatRow(from, s)); err != nil {
			return fmt.Errorf("write report row %s: %w", s.Symbol, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
