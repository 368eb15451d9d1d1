package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"StockTracker/internal/model"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), "2020-01-01T00:00:00+00:00"},
		{time.Date(2020, 1, 1, 0, 0, 0, 500_000_000, time.UTC), "2020-01-01T00:00:00.5+00:00"},
		{time.Date(2020, 1, 1, 2, 0, 0, 0, time.FixedZone("CET", 3600)), "2020-01-01T01:00:00+00:00"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRow(t *testing.T) {
	from := time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)
	row := FormatRow(from, model.StockStats{
		Symbol:       "AAPL",
		LastPrice:    123.456,
		PctChange:    0.0789,
		PeriodMin:    99.994,
		PeriodMax:    130,
		ThirtyDayAvg: 0,
	})
	want := "2020-07-01T00:00:00+00:00,AAPL,$123.46,0.08%,$99.99,$130.00,$0.00"
	if row != want {
		t.Errorf("row = %q\nwant  %q", row, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	from := time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)
	err := Write(&buf, from, []model.StockStats{
		{Symbol: "AAPL", LastPrice: 1, PctChange: -0.5, PeriodMin: 1, PeriodMax: 2, ThirtyDayAvg: 1.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Header + "\n" + "2020-07-01T00:00:00+00:00,AAPL,$1.00,-0.50%,$1.00,$2.00,$1.50\n"
	if buf.String() != want {
		t.Errorf("output = %q\nwant     %q", buf.String(), want)
	}
}

func TestWrite_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, time.Now(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != Header+"\n" {
		t.Errorf("output = %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWrite_PropagatesErrors(t *testing.T) {
	if err := Write(failingWriter{}, time.Now(), nil); err == nil {
		t.Fatal("expected write error")
	}
}
