package appender

import (
	"io"
	"os"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
)

// FileAppender writes one formatted line per record to an append-only
// text file. The file is opened at construction time; an unwritable
// path fails the constructor, never leaving a half-built appender.
type FileAppender struct {
	base
	filePath string
	file     *os.File
}

// NewFileAppender creates a FileAppender for the given path, opening it
// in append mode.
func NewFileAppender(filePath string, formatter format.Formatter, filters ...filter.Filter) (*FileAppender, error) {
	if filePath == "" {
		return nil, errors.MissingField("file_path")
	}
	a := &FileAppender{
		base:     newBase(formatter, filters),
		filePath: filePath,
	}
	if err := a.Initialize(); err != nil {
		return nil, err
	}
	return a, nil
}

// FilePath returns the target path.
func (a *FileAppender) FilePath() string { return a.filePath }

// Initialize opens the file in append mode. Reopening after Teardown is
// allowed.
func (a *FileAppender) Initialize() error {
	if a.file != nil {
		return nil
	}
	f, err := os.OpenFile(a.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.InvalidInput("file_path is not writable").WithCause(err).WithDetail("file_path", a.filePath)
	}
	a.file = f
	return nil
}

// Teardown closes the file. It is idempotent.
func (a *FileAppender) Teardown() error {
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	if err != nil {
		return errors.Internal("closing log file", err)
	}
	return nil
}

// Flush syncs the file to disk.
func (a *FileAppender) Flush() error {
	if a.file == nil {
		return nil
	}
	if err := a.file.Sync(); err != nil {
		return errors.WriteFailed("file", err)
	}
	return nil
}

// Append writes the formatted record followed by a newline and flushes.
// Appending to a torn-down appender is a no-op.
func (a *FileAppender) Append(record *core.LogRecord) error {
	if a.file == nil {
		return nil
	}
	if !a.shouldLog(record) {
		return nil
	}
	line := a.formatter.Format(record)
	if _, err := io.WriteString(a.file, line+"\n"); err != nil {
		return errors.WriteFailed("file", err)
	}
	return a.Flush()
}

// Config returns the appender's configuration map.
func (a *FileAppender) Config() map[string]any {
	return map[string]any{
		"type":      TypeFile,
		"file_path": a.filePath,
		"formatter": a.formatter.Config(),
		"filters":   a.filterConfigs(),
	}
}
