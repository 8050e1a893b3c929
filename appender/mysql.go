package appender

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
	"github.com/kbukum/logkit/validation"
)

// MySQLConfig configures a MySQLAppender. Host, user, password, and
// database are required and validated before any connection attempt.
type MySQLConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`

	// TableName is the table records are written to.
	TableName string `mapstructure:"table_name"`

	// ConnectTimeout bounds the initial TCP connect (e.g. "5s").
	ConnectTimeout string `mapstructure:"connect_timeout"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *MySQLConfig) ApplyDefaults() {
	if c.TableName == "" {
		c.TableName = "logs"
	}
	if c.ConnectTimeout == "" {
		c.ConnectTimeout = "5s"
	}
}

// mysqlLogRow is the persisted shape of one record in the MySQL `logs`
// table. The extra column is reserved for structured payloads and is
// not populated by inserts.
type mysqlLogRow struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"column:timestamp;type:datetime;not null"`
	Level     string    `gorm:"column:level;type:varchar(20);not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Extra     *string   `gorm:"column:extra;type:json"`
}

// MySQLAppender persists records as rows of a MySQL table, with the same
// resilience policy as the SQLite appender: probe before write, one
// reconnect, drop-and-report on persistent failure. Unlike the SQLite
// appender it carries no internal lock; sharing one instance across
// goroutines requires external synchronization.
type MySQLAppender struct {
	base
	cfg MySQLConfig
	db  *gorm.DB
}

// NewMySQLAppender connects to the server, creates the table if missing,
// and returns the appender. An unreachable server fails construction
// with a connection error.
func NewMySQLAppender(cfg MySQLConfig, formatter format.Formatter, filters ...filter.Filter) (*MySQLAppender, error) {
	cfg.ApplyDefaults()
	if err := validation.ValidateStruct(&cfg); err != nil {
		return nil, err
	}
	a := &MySQLAppender{
		base: newBase(formatter, filters),
		cfg:  cfg,
	}
	if err := a.connect(); err != nil {
		return nil, errors.ConnectionFailed("mysql", err).
			WithDetail("host", cfg.Host).
			WithDetail("database", cfg.Database)
	}
	return a, nil
}

func (a *MySQLAppender) dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=true&timeout=%s",
		a.cfg.User, a.cfg.Password, a.cfg.Host, a.cfg.Database, a.cfg.ConnectTimeout)
}

func (a *MySQLAppender) connect() error {
	db, err := openGorm(mysql.Open(a.dsn()))
	if err != nil {
		return err
	}
	if err := pingGorm(db); err != nil {
		closeGorm(db)
		return err
	}
	if err := db.Table(a.cfg.TableName).AutoMigrate(&mysqlLogRow{}); err != nil {
		closeGorm(db)
		return err
	}
	a.db = db
	return nil
}

func (a *MySQLAppender) reconnect() error {
	closeGorm(a.db)
	a.db = nil
	return a.connect()
}

// Initialize reopens a torn-down appender.
func (a *MySQLAppender) Initialize() error {
	if a.db != nil {
		return nil
	}
	if err := a.connect(); err != nil {
		return errors.ConnectionFailed("mysql", err).WithDetail("host", a.cfg.Host)
	}
	return nil
}

// Append inserts one row per admitted record. A write that still fails
// after one reconnect is dropped and reported; Append never propagates
// an error to the caller.
func (a *MySQLAppender) Append(record *core.LogRecord) error {
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

func (a *MySQLAppender) insert(record *core.LogRecord) error {
	row := mysqlLogRow{
		Timestamp: record.Timestamp.Truncate(time.Second),
		Level:     record.Level.String(),
		Message:   record.Message,
	}
	return a.db.Table(a.cfg.TableName).Create(&row).Error
}

func (a *MySQLAppender) report(record *core.LogRecord, err error) {
	d := diagnostics()
	d.Error().
		Str("appender", "mysql").
		Str("appender_id", a.ID()).
		Str("host", a.cfg.Host).
		Str("database", a.cfg.Database).
		Str("level", record.Level.String()).
		Err(err).
		Msg("log record dropped")
}

// Flush is a no-op; every insert commits its own transaction.
func (a *MySQLAppender) Flush() error { return nil }

// Teardown closes the connection, swallowing close-time errors. It is
// idempotent.
func (a *MySQLAppender) Teardown() error {
	closeGorm(a.db)
	a.db = nil
	return nil
}

// Config returns the appender's configuration map. The password is
// included so the map round-trips through FromConfig.
func (a *MySQLAppender) Config() map[string]any {
	return map[string]any{
		"type":       TypeMySQL,
		"host":       a.cfg.Host,
		"user":       a.cfg.User,
		"password":   a.cfg.Password,
		"database":   a.cfg.Database,
		"table_name": a.cfg.TableName,
		"formatter":  a.formatter.Config(),
		"filters":    a.filterConfigs(),
	}
}
