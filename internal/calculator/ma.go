package calculator

// ThirtyDayWindow is the SMA window used for the report's average column.
const ThirtyDayWindow = 30

// WindowedSMA computes the simple moving average for every contiguous window of
// the given size, sliding one point at a time.
//
// An empty series has no result (ok is false). A window size of one or less, or
// a series shorter than the window, yields an empty non-nil slice with ok true.
func WindowedSMA(window int, series []float64) ([]float64, bool) {
	if len(series) == 0 {
		return nil, false
	}
	if window <= 1 || len(series) < window {
		return []float64{}, true
	}

	averages := make([]float64, 0, len(series)-window+1)
	for start := 0; start+window <= len(series); start++ {
		sum := 0.0
		for _, p := range series[start : start+window] {
			sum += p
		}
		averages = append(averages, sum/float64(window))
	}
	return averages, true
}

// LastSMA returns the most recent windowed average, or false when none exists.
func LastSMA(window int, series []float64) (float64, bool) {
	averages, ok := WindowedSMA(window, series)
	if !ok || len(averages) == 0 {
		return 0, false
	}
	return averages[len(averages)-1], true
}
