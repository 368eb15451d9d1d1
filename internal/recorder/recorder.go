package recorder

// Recorder receives symbols that were left out of a report and the reason why.
type Recorder interface {
	RecordDropped(symbol string, reason error)
}
