package manager

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/logger"
)

// LogManager is a name-keyed registry of loggers. It is not internally
// synchronized; concurrent mutation needs external locking.
type LogManager struct {
	name    string
	loggers map[string]*logger.Logger
}

// NewLogManager creates an empty registry.
func NewLogManager(name string) *LogManager {
	return &LogManager{
		name:    name,
		loggers: make(map[string]*logger.Logger),
	}
}

// Name returns the registry's name.
func (m *LogManager) Name() string { return m.name }

// AddLogger registers a logger under its name. Registering a second
// logger with an existing name is an error and leaves the first
// registration untouched.
func (m *LogManager) AddLogger(l *logger.Logger) error {
	if l == nil {
		return errors.InvalidInput("logger must not be nil")
	}
	if l.Name() == "" {
		return errors.InvalidInput("logger must have a name")
	}
	if _, exists := m.loggers[l.Name()]; exists {
		return errors.AlreadyExists("logger", l.Name())
	}
	m.loggers[l.Name()] = l
	return nil
}

// GetLogger retrieves a logger by name.
func (m *LogManager) GetLogger(name string) (*logger.Logger, error) {
	l, ok := m.loggers[name]
	if !ok {
		return nil, errors.NotFound("logger", name)
	}
	return l, nil
}

// RemoveLogger removes a logger by name.
func (m *LogManager) RemoveLogger(name string) error {
	if _, ok := m.loggers[name]; !ok {
		return errors.NotFound("logger", name)
	}
	delete(m.loggers, name)
	return nil
}

// Contains reports whether a logger with the given name is registered.
func (m *LogManager) Contains(name string) bool {
	_, ok := m.loggers[name]
	return ok
}

// Len returns the number of registered loggers.
func (m *LogManager) Len() int { return len(m.loggers) }

// Names returns the registered names in sorted order.
func (m *LogManager) Names() []string {
	names := make([]string, 0, len(m.loggers))
	for name := range m.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Loggers returns every registered logger, ordered by name.
func (m *LogManager) Loggers() []*logger.Logger {
	loggers := make([]*logger.Logger, 0, len(m.loggers))
	for _, name := range m.Names() {
		loggers = append(loggers, m.loggers[name])
	}
	return loggers
}

// Clear removes every registered logger.
func (m *LogManager) Clear() {
	m.loggers = make(map[string]*logger.Logger)
}

// String describes the registry.
func (m *LogManager) String() string {
	return fmt.Sprintf("LogManager with %d loggers: %s", len(m.loggers), strings.Join(m.Names(), ", "))
}
