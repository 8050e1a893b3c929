package appender

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Diagnostics from the database appenders are reported through a
// dedicated zerolog logger writing to stderr, never through the logging
// pipeline itself, so a failing sink cannot recurse into it.
var (
	diagMu sync.RWMutex
	diag   = zerolog.New(os.Stderr).With().Timestamp().Str("component", "logkit").Logger()
)

// SetDiagnostics replaces the side-channel logger. Pass a logger built on
// zerolog.Nop() to silence diagnostics entirely.
func SetDiagnostics(l zerolog.Logger) {
	diagMu.Lock()
	defer diagMu.Unlock()
	diag = l
}

// diagnostics returns the current side-channel logger.
func diagnostics() zerolog.Logger {
	diagMu.RLock()
	defer diagMu.RUnlock()
	return diag
}
