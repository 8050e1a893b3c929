// Package core defines the value types the logging pipeline is built
// around: LoggingLevel, LogRecord, and ConsoleColor.
//
// A LogRecord is created once per log call and handed read-only to every
// appender; levels form a total order used by both the logger's minimum
// level gate and LevelFilter.
package core
