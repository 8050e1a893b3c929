package manager

import (
	"sync"

	"github.com/kbukum/logkit/appender"
	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/format"
	"github.com/kbukum/logkit/logger"
)

// GlobalLoggerName is the name of the lazily provisioned default logger.
const GlobalLoggerName = "global"

var (
	globalMu sync.Mutex
	global   *LogManager
)

// Global returns the process-wide registry, creating it on first use.
// Creation is guarded so concurrent first calls observe one instance.
func Global() *LogManager {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = NewLogManager("GlobalLogManager")
	}
	return global
}

// GlobalLogger returns the "global" logger, provisioning it on first use
// with an INFO level and a single console appender using the simple
// formatter. Repeated calls return the same instance.
func GlobalLogger() (*logger.Logger, error) {
	m := Global()
	if l, err := m.GetLogger(GlobalLoggerName); err == nil {
		return l, nil
	}
	console := appender.NewConsoleAppender(format.NewSimpleFormatter())
	l, err := logger.New(GlobalLoggerName, core.LevelInfo, []appender.Appender{console})
	if err != nil {
		return nil, err
	}
	if err := m.AddLogger(l); err != nil {
		return nil, err
	}
	return l, nil
}

// ResetGlobal discards the process-wide registry. Tests use this to
// isolate cases; application code should not call it.
func ResetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = nil
}
