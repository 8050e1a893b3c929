package format

import (
	"fmt"
	"time"

	"github.com/kbukum/logkit/core"
)

// fallbackMessage replaces an empty record message in simple output.
const fallbackMessage = "No message provided"

// SimpleFormatter renders records as "[<RFC3339 timestamp> <LEVEL>]: <message>".
type SimpleFormatter struct{}

// NewSimpleFormatter creates a SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter { return &SimpleFormatter{} }

// Format renders the record. A zero timestamp renders as "N/A" and an
// empty message is replaced with a placeholder.
func (f *SimpleFormatter) Format(record *core.LogRecord) string {
	timestamp := "N/A"
	if !record.Timestamp.IsZero() {
		timestamp = record.Timestamp.Format(time.RFC3339)
	}
	message := record.Message
	if message == "" {
		message = fallbackMessage
	}
	return fmt.Sprintf("[%s %s]: %s", timestamp, record.Level, message)
}

// Config returns the formatter's configuration map.
func (f *SimpleFormatter) Config() map[string]any {
	return map[string]any{"type": TypeSimple}
}
