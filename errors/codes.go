package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors (never retryable)
const (
	// ErrCodeInvalidInput indicates an argument has the wrong type or value.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required configuration field is absent.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Registry errors
const (
	// ErrCodeAlreadyExists indicates a logger with the same name is registered.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// ErrCodeNotFound indicates a logger, appender, filter, or formatter
	// was requested by a name that is not registered.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Backend errors
const (
	// ErrCodeConnectionFailed indicates a database backend was unreachable
	// at construction time.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeWriteFailed indicates an append to a backend failed.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// retryableCodes holds codes whose operations may succeed when retried.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeWriteFailed:      true,
}

// IsRetryableCode reports whether the code represents a transient failure.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
