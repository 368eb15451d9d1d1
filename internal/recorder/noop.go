package recorder

// NoopRecorder discards every event. It is the default, keeping the report silent
// about symbols that could not be fetched.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDropped(_ string, _ error) {}
