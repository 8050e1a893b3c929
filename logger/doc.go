// Package logger provides named, leveled log dispatch.
//
// A Logger holds a minimum level and an ordered appender list; every log
// call below the minimum level is a no-op, everything else becomes one
// LogRecord dispatched to each appender in registration order. Loggers
// are registered by name in a manager registry; construction itself does
// not register (registration is an explicit step at the composition
// boundary).
package logger
