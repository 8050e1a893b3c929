package logger

import (
	"fmt"

	"github.com/kbukum/logkit/appender"
	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
)

// Logger dispatches log calls to an ordered list of appenders. The
// appender list is copied on construction so later mutation of the
// caller's slice cannot alias the logger's. Loggers are not internally
// synchronized; concurrent mutation needs external locking.
type Logger struct {
	name      string
	level     core.LoggingLevel
	appenders []appender.Appender
}

// New creates a Logger. The name must be non-empty and at least one
// appender must be provided. A zero level defaults to INFO.
func New(name string, level core.LoggingLevel, appenders []appender.Appender) (*Logger, error) {
	if name == "" {
		return nil, errors.InvalidInput("logger must have a name")
	}
	if level == 0 {
		level = core.LevelInfo
	}
	if !level.Valid() {
		return nil, errors.InvalidInput("level must be a valid logging level")
	}
	if len(appenders) == 0 {
		return nil, errors.InvalidInput("at least one appender must be provided")
	}
	for _, a := range appenders {
		if a == nil {
			return nil, errors.InvalidInput("appender must not be nil")
		}
	}
	return &Logger{
		name:      name,
		level:     level,
		appenders: append([]appender.Appender(nil), appenders...),
	}, nil
}

// Name returns the logger's name.
func (l *Logger) Name() string { return l.name }

// Level returns the current minimum level.
func (l *Logger) Level() core.LoggingLevel { return l.level }

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level core.LoggingLevel) error {
	if !level.Valid() {
		return errors.InvalidInput("level must be a valid logging level")
	}
	l.level = level
	return nil
}

// Log validates the call, gates it against the minimum level, and
// dispatches one record to every appender in registration order. An
// appender error propagates immediately; later appenders are not
// invoked for that record.
func (l *Logger) Log(level core.LoggingLevel, message string, metadata map[string]any) error {
	if !level.Valid() {
		return errors.InvalidInput("level must be a valid logging level")
	}
	if message == "" {
		return errors.InvalidInput("message cannot be an empty string")
	}
	if level < l.level {
		return nil
	}
	record := core.NewRecordWith(level, message, "", metadata)
	// Snapshot so an appender mutating the list mid-dispatch cannot
	// invalidate the iteration.
	for _, a := range l.Appenders() {
		if err := a.Append(record); err != nil {
			return err
		}
	}
	return nil
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(message string, metadata map[string]any) error {
	return l.Log(core.LevelDebug, message, metadata)
}

// Info logs a message at INFO level.
func (l *Logger) Info(message string, metadata map[string]any) error {
	return l.Log(core.LevelInfo, message, metadata)
}

// Warning logs a message at WARNING level.
func (l *Logger) Warning(message string, metadata map[string]any) error {
	return l.Log(core.LevelWarning, message, metadata)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(message string, metadata map[string]any) error {
	return l.Log(core.LevelError, message, metadata)
}

// Critical logs a message at CRITICAL level.
func (l *Logger) Critical(message string, metadata map[string]any) error {
	return l.Log(core.LevelCritical, message, metadata)
}

// AddAppender appends an appender to the dispatch list.
func (l *Logger) AddAppender(a appender.Appender) error {
	if a == nil {
		return errors.InvalidInput("appender must not be nil")
	}
	l.appenders = append(l.appenders, a)
	return nil
}

// RemoveAppender removes the given appender instance from the dispatch
// list. Removing an appender that is not present is an error.
func (l *Logger) RemoveAppender(a appender.Appender) error {
	if a == nil {
		return errors.InvalidInput("appender must not be nil")
	}
	for i, existing := range l.appenders {
		if existing == a {
			l.appenders = append(l.appenders[:i], l.appenders[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("appender", "in logger "+l.name)
}

// ClearAppenders removes every appender from the dispatch list.
func (l *Logger) ClearAppenders() {
	l.appenders = nil
}

// Appenders returns a copy of the dispatch list.
func (l *Logger) Appenders() []appender.Appender {
	return append([]appender.Appender(nil), l.appenders...)
}

// Equal reports structural equality: same name, level, and appender
// instances in the same order.
func (l *Logger) Equal(other *Logger) bool {
	if other == nil {
		return false
	}
	if l.name != other.name || l.level != other.level || len(l.appenders) != len(other.appenders) {
		return false
	}
	for i := range l.appenders {
		if l.appenders[i] != other.appenders[i] {
			return false
		}
	}
	return true
}

// String describes the logger.
func (l *Logger) String() string {
	return fmt.Sprintf("Logger: %s, Level: %s, Appenders: %d", l.name, l.level, len(l.appenders))
}
