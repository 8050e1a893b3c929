// Package appender implements the output backends of the logging
// pipeline: console, colored console, file, SQLite, MySQL, and a
// composite that fans out to child appenders.
//
// Every appender owns a formatter (SimpleFormatter unless set) and a
// filter chain with AND semantics. Lifecycle is Initialize, repeated
// Append, Flush as needed, and an idempotent Teardown.
//
// Console, file, and composite appenders propagate append errors to the
// caller. The database appenders never do: before each write they probe
// the connection, reconnect once on failure, and if the retried write
// still fails they drop the record and report through a diagnostics side
// channel so a broken log sink cannot destabilize the host application.
package appender
