// Package filter gates which log records reach an appender.
//
// A filter is a stateless predicate over a record. KeywordFilter admits a
// record when its message contains any configured keyword (case-sensitive;
// an empty keyword set admits nothing). LevelFilter admits records at or
// above a threshold. Appenders evaluate filter chains with AND semantics.
package filter
