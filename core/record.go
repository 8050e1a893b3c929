package core

import "time"

// LogRecord carries the data of a single logging event. It is built once
// per log call and treated as read-only by formatters, filters, and
// appenders. The timestamp defaults to the creation instant and may be
// overwritten with SetTimestamp.
type LogRecord struct {
	Level     LoggingLevel
	Message   string
	Source    string
	Metadata  map[string]any
	Timestamp time.Time
}

// NewRecord creates a LogRecord stamped with the current time.
func NewRecord(level LoggingLevel, message string) *LogRecord {
	return &LogRecord{
		Level:     level,
		Message:   message,
		Metadata:  map[string]any{},
		Timestamp: time.Now(),
	}
}

// NewRecordWith creates a LogRecord with a source and metadata. A nil
// metadata map is replaced with an empty one so callers can always range
// over it.
func NewRecordWith(level LoggingLevel, message, source string, metadata map[string]any) *LogRecord {
	r := NewRecord(level, message)
	r.Source = source
	if metadata != nil {
		r.Metadata = metadata
	}
	return r
}

// SetTimestamp overrides the record's creation timestamp.
func (r *LogRecord) SetTimestamp(ts time.Time) {
	r.Timestamp = ts
}
