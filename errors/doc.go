// Package errors provides unified error handling for logkit.
// It implements structured error types with machine-readable codes and
// retryable detection, covering the library's failure taxonomy:
// validation, duplicate registration, lookup, connectivity, and write
// failures.
package errors
