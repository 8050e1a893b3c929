// Package format renders log records to strings.
//
// Two formatters are provided: SimpleFormatter produces a human-readable
// "[timestamp LEVEL]: message" line, and JSONFormatter produces one JSON
// object per record with metadata merged at the top level. Formatters are
// constructed declaratively from a `type`-discriminated config map via
// FromConfig.
package format
