package appender

import (
	"fmt"
	"io"
	"os"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
)

// ConsoleAppender writes one formatted line per record to an output
// stream (stdout unless changed) and flushes the stream after every
// write.
type ConsoleAppender struct {
	base
	out io.Writer
}

// NewConsoleAppender creates a ConsoleAppender writing to stdout.
func NewConsoleAppender(formatter format.Formatter, filters ...filter.Filter) *ConsoleAppender {
	return &ConsoleAppender{
		base: newBase(formatter, filters),
		out:  os.Stdout,
	}
}

// SetOutput redirects the appender to another writer.
func (a *ConsoleAppender) SetOutput(w io.Writer) {
	if w != nil {
		a.out = w
	}
}

// Initialize is a no-op; the output stream is ambient.
func (a *ConsoleAppender) Initialize() error { return nil }

// Teardown is a no-op; the appender does not own the output stream.
func (a *ConsoleAppender) Teardown() error { return nil }

// Flush syncs the output stream when it supports syncing.
func (a *ConsoleAppender) Flush() error {
	if s, ok := a.out.(interface{ Sync() error }); ok {
		// stdout sync fails on pipes; that is not an append failure.
		_ = s.Sync()
	}
	return nil
}

// Append writes the formatted record followed by a newline. A filter
// rejection skips both the write and the flush.
func (a *ConsoleAppender) Append(record *core.LogRecord) error {
	if !a.shouldLog(record) {
		return nil
	}
	line := a.formatter.Format(record)
	if _, err := io.WriteString(a.out, line+"\n"); err != nil {
		return errors.WriteFailed("console", err)
	}
	return a.Flush()
}

// Config returns the appender's configuration map.
func (a *ConsoleAppender) Config() map[string]any {
	return map[string]any{
		"type":      TypeConsole,
		"formatter": a.formatter.Config(),
		"filters":   a.filterConfigs(),
	}
}

// ColoredConsoleAppender wraps each formatted line in an ANSI color code
// and a reset code. By default it honors its filter chain like every
// other appender; the historical always-write behavior is available by
// constructing it unfiltered.
type ColoredConsoleAppender struct {
	ConsoleAppender
	color      core.ConsoleColor
	unfiltered bool
}

// NewColoredConsoleAppender creates a ColoredConsoleAppender writing to
// stdout with the given color.
func NewColoredConsoleAppender(formatter format.Formatter, color core.ConsoleColor, filters ...filter.Filter) *ColoredConsoleAppender {
	return &ColoredConsoleAppender{
		ConsoleAppender: *NewConsoleAppender(formatter, filters...),
		color:           color,
	}
}

// SetColor changes the color applied to subsequent records.
func (a *ColoredConsoleAppender) SetColor(color core.ConsoleColor) {
	a.color = color
}

// Color returns the current color.
func (a *ColoredConsoleAppender) Color() core.ConsoleColor { return a.color }

// SetUnfiltered toggles the legacy mode in which the appender ignores
// its filter chain and writes every record.
func (a *ColoredConsoleAppender) SetUnfiltered(unfiltered bool) {
	a.unfiltered = unfiltered
}

// Append writes the color-wrapped formatted record.
func (a *ColoredConsoleAppender) Append(record *core.LogRecord) error {
	if !a.unfiltered && !a.shouldLog(record) {
		return nil
	}
	line := fmt.Sprintf("%s%s%s", a.color, a.formatter.Format(record), core.ColorReset)
	if _, err := io.WriteString(a.out, line+"\n"); err != nil {
		return errors.WriteFailed("console", err)
	}
	return a.Flush()
}

// Config returns the appender's configuration map.
func (a *ColoredConsoleAppender) Config() map[string]any {
	cfg := map[string]any{
		"type":      TypeColoredConsole,
		"color":     core.ColorName(a.color),
		"formatter": a.formatter.Config(),
		"filters":   a.filterConfigs(),
	}
	if a.unfiltered {
		cfg["unfiltered"] = true
	}
	return cfg
}
