package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/logkit/core"
)

// Metadata keys written by LogContext.
const (
	FieldTraceID = "trace_id"
	FieldSpanID  = "span_id"
)

// LogContext logs a message enriched with the trace and span IDs of the
// span carried by ctx, when one is present. The caller's metadata map is
// not mutated.
func (l *Logger) LogContext(ctx context.Context, level core.LoggingLevel, message string, metadata map[string]any) error {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l.Log(level, message, metadata)
	}
	enriched := make(map[string]any, len(metadata)+2)
	for k, v := range metadata {
		enriched[k] = v
	}
	enriched[FieldTraceID] = sc.TraceID().String()
	enriched[FieldSpanID] = sc.SpanID().String()
	return l.Log(level, message, enriched)
}
