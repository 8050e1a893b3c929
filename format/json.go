package format

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kbukum/logkit/core"
)

// JSONFormatter renders records as a single JSON object containing
// message, level, timestamp, source (when set), and every metadata key
// merged at the top level.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

// Format renders the record as JSON. Metadata values that cannot be
// encoded are stringified rather than failing the whole record.
func (f *JSONFormatter) Format(record *core.LogRecord) string {
	data := map[string]any{
		"message":   record.Message,
		"level":     record.Level.String(),
		"timestamp": record.Timestamp.Format(time.RFC3339),
	}
	if record.Source != "" {
		data["source"] = record.Source
	}
	for k, v := range record.Metadata {
		data[k] = encodable(v)
	}

	out, err := json.Marshal(data)
	if err != nil {
		// Reachable only if a metadata key itself defeats encoding;
		// degrade to the simple shape instead of dropping the record.
		return fmt.Sprintf(`{"message":%q,"level":%q,"timestamp":%q}`,
			record.Message, record.Level.String(), data["timestamp"])
	}
	return string(out)
}

// Config returns the formatter's configuration map.
func (f *JSONFormatter) Config() map[string]any {
	return map[string]any{"type": TypeJSON}
}

// encodable returns v unchanged when it can be JSON-encoded, otherwise
// its string representation.
func encodable(v any) any {
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprint(v)
	}
	return v
}
