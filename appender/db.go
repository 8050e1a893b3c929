package appender

import (
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// logRow is the persisted shape of one record in the SQLite `logs`
// table: auto-increment id, timestamp text, level name, message.
type logRow struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp string `gorm:"column:timestamp;not null"`
	Level     string `gorm:"column:level;not null"`
	Message   string `gorm:"column:message;type:text;not null"`
}

// openGorm opens a gorm connection with its own query logging silenced;
// the library must not log through itself.
func openGorm(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Discard,
	})
}

// pingGorm verifies the connection is alive with a cheap probe.
func pingGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// closeGorm closes the underlying pool, swallowing close-time errors.
func closeGorm(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
