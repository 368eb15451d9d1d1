package calculator

import "gonum.org/v1/gonum/floats"

// Min returns the smallest price in the series. ok is false for an empty series.
func Min(series []float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	return floats.Min(series), true
}

// Max returns the largest price in the series. ok is false for an empty series.
func Max(series []float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	return floats.Max(series), true
}

// PriceDiff returns the absolute and relative change between the first and last
// price. The relative change is measured against the first price; when the first
// price is zero the absolute change is reported in its place.
func PriceDiff(series []float64) (abs, rel float64, ok bool) {
	if len(series) == 0 {
		return 0, 0, false
	}
	first := series[0]
	last := series[len(series)-1]

	abs = last - first
	if first == 0 {
		return abs, abs, true
	}
	return abs, abs / first, true
}
