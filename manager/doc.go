// Package manager provides the name-keyed logger registry and the
// process-wide default registry.
//
// A LogManager maps unique names to loggers; duplicate registration is a
// hard error, never an overwrite. Global() returns the process-wide
// registry, created exactly once, and GlobalLogger() lazily provisions
// the conventional "global" console logger inside it.
package manager
