package appender

import (
	"github.com/google/uuid"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
)

// Appender turns a log record into an external effect: a console line, a
// file line, or a database row.
type Appender interface {
	// Initialize opens backend resources. It is a no-op for appenders
	// that acquire resources at construction time.
	Initialize() error
	// Append evaluates the filter chain, formats the record, and writes
	// it. A rejected record is skipped silently.
	Append(record *core.LogRecord) error
	// Flush forces buffered data out to the backend.
	Flush() error
	// Teardown releases backend resources. It is idempotent.
	Teardown() error
	// Config returns the type-discriminated configuration map that
	// FromConfig accepts to rebuild the appender.
	Config() map[string]any
}

// base carries the state shared by all appenders: a formatter, a filter
// chain, and an instance ID used to attribute diagnostics.
type base struct {
	id               string
	formatter        format.Formatter
	formatterDefault bool
	filters          []filter.Filter
}

func newBase(formatter format.Formatter, filters []filter.Filter) base {
	b := base{
		id:      uuid.NewString(),
		filters: append([]filter.Filter(nil), filters...),
	}
	if formatter != nil {
		b.formatter = formatter
	} else {
		b.formatter = format.NewSimpleFormatter()
		b.formatterDefault = true
	}
	return b
}

// shouldLog evaluates the filter chain with AND semantics, stopping at
// the first rejection.
func (b *base) shouldLog(record *core.LogRecord) bool {
	for _, f := range b.filters {
		if !f.ShouldLog(record) {
			return false
		}
	}
	return true
}

// ID returns the appender's instance ID.
func (b *base) ID() string { return b.id }

// Formatter returns the appender's formatter.
func (b *base) Formatter() format.Formatter { return b.formatter }

// SetFormatter replaces the appender's formatter. A nil formatter resets
// to the default SimpleFormatter.
func (b *base) SetFormatter(f format.Formatter) {
	if f == nil {
		b.formatter = format.NewSimpleFormatter()
		b.formatterDefault = true
		return
	}
	b.formatter = f
	b.formatterDefault = false
}

// UsingDefaultFormatter reports whether the formatter was never set
// explicitly. The logger builder uses this to apply its default
// formatter without clobbering explicit choices.
func (b *base) UsingDefaultFormatter() bool { return b.formatterDefault }

// Filters returns a copy of the filter chain.
func (b *base) Filters() []filter.Filter {
	return append([]filter.Filter(nil), b.filters...)
}

// AddFilter appends a filter to the chain.
func (b *base) AddFilter(f filter.Filter) {
	if f != nil {
		b.filters = append(b.filters, f)
	}
}

// filterConfigs renders the filter chain for Config maps.
func (b *base) filterConfigs() []map[string]any {
	configs := make([]map[string]any, 0, len(b.filters))
	for _, f := range b.filters {
		configs = append(configs, f.Config())
	}
	return configs
}
