package recorder

import (
	"github.com/rs/zerolog"
)

// LogRecorder writes a warning for every dropped symbol.
type LogRecorder struct {
	logger zerolog.Logger
}

// NewLogRecorder creates a recorder that logs through the given logger.
func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) RecordDropped(symbol string, reason error) {
	r.logger.Warn().
		Str("event", "symbol_dropped").
		Str("symbol", symbol).
		Err(reason).
		Msg("symbol left out of report")
}
