package appender

import (
	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
)

// CompositeAppender fans a record out to an ordered list of child
// appenders. Its own filter chain runs before delegation, in addition to
// each child's filters. Lifecycle calls are forwarded to every child in
// list order; a child error propagates immediately and stops the
// remaining children for that call.
type CompositeAppender struct {
	base
	appenders []Appender
}

// NewCompositeAppender creates a CompositeAppender. At least one child
// appender is required.
func NewCompositeAppender(formatter format.Formatter, appenders []Appender, filters ...filter.Filter) (*CompositeAppender, error) {
	if len(appenders) == 0 {
		return nil, errors.InvalidInput("at least one appender must be provided")
	}
	return &CompositeAppender{
		base:      newBase(formatter, filters),
		appenders: append([]Appender(nil), appenders...),
	}, nil
}

// AddAppender appends a child appender.
func (a *CompositeAppender) AddAppender(child Appender) error {
	if child == nil {
		return errors.InvalidInput("appender must not be nil")
	}
	a.appenders = append(a.appenders, child)
	return nil
}

// Appenders returns a copy of the child list.
func (a *CompositeAppender) Appenders() []Appender {
	return append([]Appender(nil), a.appenders...)
}

// Append delegates the record to every child in order. The child list is
// snapshotted so a callback mutating it mid-dispatch cannot invalidate
// the iteration.
func (a *CompositeAppender) Append(record *core.LogRecord) error {
	if !a.shouldLog(record) {
		return nil
	}
	for _, child := range a.Appenders() {
		if err := child.Append(record); err != nil {
			return err
		}
	}
	return nil
}

// Initialize initializes every child in order.
func (a *CompositeAppender) Initialize() error {
	for _, child := range a.appenders {
		if err := child.Initialize(); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every child in order.
func (a *CompositeAppender) Flush() error {
	for _, child := range a.appenders {
		if err := child.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Teardown tears down every child in order.
func (a *CompositeAppender) Teardown() error {
	for _, child := range a.appenders {
		if err := child.Teardown(); err != nil {
			return err
		}
	}
	return nil
}

// Config returns the appender's configuration map, including every
// child's map.
func (a *CompositeAppender) Config() map[string]any {
	children := make([]map[string]any, 0, len(a.appenders))
	for _, child := range a.appenders {
		children = append(children, child.Config())
	}
	return map[string]any{
		"type":      TypeComposite,
		"appenders": children,
		"formatter": a.formatter.Config(),
		"filters":   a.filterConfigs(),
	}
}
