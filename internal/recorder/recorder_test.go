package recorder

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogRecorder_RecordDropped(t *testing.T) {
	var buf bytes.Buffer
	rec := NewLogRecorder(zerolog.New(&buf))

	rec.RecordDropped("UBER", errors.New("data unavailable"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["symbol"] != "UBER" {
		t.Errorf("symbol = %v, want UBER", entry["symbol"])
	}
	if entry["error"] != "data unavailable" {
		t.Errorf("error = %v", entry["error"])
	}
}

func TestRecorders_SatisfyInterface(t *testing.T) {
	var _ Recorder = NewNoopRecorder()
	var _ Recorder = NewLogRecorder(zerolog.Nop())

	// must not panic
	NewNoopRecorder().RecordDropped("X", nil)
}
