package appender

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
	"github.com/kbukum/logkit/validation"
)

// SQLiteConfig configures a SQLiteAppender.
type SQLiteConfig struct {
	// DBPath is the path of the SQLite database file.
	DBPath string `mapstructure:"db_path" validate:"required"`

	// TableName is the table records are written to.
	TableName string `mapstructure:"table_name"`

	// BusyTimeout bounds how long a write waits on a locked database
	// (e.g. "5s").
	BusyTimeout string `mapstructure:"busy_timeout"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *SQLiteConfig) ApplyDefaults() {
	if c.TableName == "" {
		c.TableName = "logs"
	}
	if c.BusyTimeout == "" {
		c.BusyTimeout = "5s"
	}
}

// SQLiteAppender persists records as rows of a SQLite table. It is the
// one appender that is safe to share across goroutines: a mutex guards
// connect, append, and teardown. Append never returns an error; a write
// that still fails after one reconnect is dropped and reported through
// the diagnostics side channel.
type SQLiteAppender struct {
	base
	mu  sync.Mutex
	cfg SQLiteConfig
	db  *gorm.DB
}

// NewSQLiteAppender opens the database, creates the table if missing,
// and returns the appender. An unreachable database fails construction.
func NewSQLiteAppender(cfg SQLiteConfig, formatter format.Formatter, filters ...filter.Filter) (*SQLiteAppender, error) {
	cfg.ApplyDefaults()
	if err := validation.ValidateStruct(&cfg); err != nil {
		return nil, err
	}
	a := &SQLiteAppender{
		base: newBase(formatter, filters),
		cfg:  cfg,
	}
	if err := a.connect(); err != nil {
		return nil, errors.ConnectionFailed("sqlite", err).WithDetail("db_path", cfg.DBPath)
	}
	return a, nil
}

// connect opens the connection and runs the idempotent table migration.
// Callers must hold the mutex (or be the constructor).
func (a *SQLiteAppender) connect() error {
	dsn := a.cfg.DBPath
	if timeout, err := time.ParseDuration(a.cfg.BusyTimeout); err == nil {
		dsn = fmt.Sprintf("%s?_busy_timeout=%d", a.cfg.DBPath, timeout.Milliseconds())
	}
	db, err := openGorm(sqlite.Open(dsn))
	if err != nil {
		return err
	}
	if err := db.Table(a.cfg.TableName).AutoMigrate(&logRow{}); err != nil {
		closeGorm(db)
		return err
	}
	a.db = db
	return nil
}

// reconnect tears the connection down and opens a fresh one.
func (a *SQLiteAppender) reconnect() error {
	closeGorm(a.db)
	a.db = nil
	return a.connect()
}

// Initialize reopens a torn-down appender.
func (a *SQLiteAppender) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.db != nil {
		return nil
	}
	if err := a.connect(); err != nil {
		return errors.ConnectionFailed("sqlite", err).WithDetail("db_path", a.cfg.DBPath)
	}
	return nil
}

// Append inserts one row per admitted record. The connection is probed
// before each write and reopened once on failure; persistent failure
// drops the record without propagating.
func (a *SQLiteAppender) Append(record *core.LogRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.shouldLog(record) {
		return nil
	}
	if a.db == nil {
		a.report(record, fmt.Errorf("appender is torn down"))
		return nil
	}

	if err := pingGorm(a.db); err != nil {
		if rerr := a.reconnect(); rerr != nil {
			a.report(record, rerr)
			return nil
		}
	}
	if err := a.insert(record); err != nil {
		if rerr := a.reconnect(); rerr != nil {
			a.report(record, rerr)
			return nil
		}
		if err = a.insert(record); err != nil {
			a.report(record, err)
		}
	}
	return nil
}

func (a *SQLiteAppender) insert(record *core.LogRecord) error {
	row := logRow{
		Timestamp: record.Timestamp.Format(time.RFC3339),
		Level:     record.Level.String(),
		Message:   record.Message,
	}
	return a.db.Table(a.cfg.TableName).Create(&row).Error
}

// report emits a dropped-record diagnostic to the side channel.
func (a *SQLiteAppender) report(record *core.LogRecord, err error) {
	d := diagnostics()
	d.Error().
		Str("appender", "sqlite").
		Str("appender_id", a.ID()).
		Str("db_path", a.cfg.DBPath).
		Str("level", record.Level.String()).
		Err(err).
		Msg("log record dropped")
}

// Flush is a no-op; every insert commits its own transaction.
func (a *SQLiteAppender) Flush() error { return nil }

// Teardown closes the connection, swallowing close-time errors. It is
// idempotent.
func (a *SQLiteAppender) Teardown() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	closeGorm(a.db)
	a.db = nil
	return nil
}

// Config returns the appender's configuration map.
func (a *SQLiteAppender) Config() map[string]any {
	return map[string]any{
		"type":       TypeSQLite,
		"db_path":    a.cfg.DBPath,
		"table_name": a.cfg.TableName,
		"formatter":  a.formatter.Config(),
		"filters":    a.filterConfigs(),
	}
}
