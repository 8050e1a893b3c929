package filter

import (
	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
)

// LevelFilter admits records whose level is at or above a threshold.
type LevelFilter struct {
	level core.LoggingLevel
}

// NewLevelFilter creates a LevelFilter. The level must be one of the
// defined logging levels.
func NewLevelFilter(level core.LoggingLevel) (*LevelFilter, error) {
	if !level.Valid() {
		return nil, errors.InvalidInput("level must be a valid logging level")
	}
	return &LevelFilter{level: level}, nil
}

// ShouldLog reports whether the record's level meets the threshold
// (inclusive lower bound).
func (f *LevelFilter) ShouldLog(record *core.LogRecord) bool {
	return record.Level >= f.level
}

// Level returns the threshold level.
func (f *LevelFilter) Level() core.LoggingLevel { return f.level }

// Config returns the filter's configuration map.
func (f *LevelFilter) Config() map[string]any {
	return map[string]any{
		"type":  TypeLevel,
		"level": f.level.String(),
	}
}

// levelConfig is the decoded shape of a LevelFilter config map.
type levelConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

func levelFromConfig(data map[string]any) (*LevelFilter, error) {
	if _, ok := data["level"]; !ok {
		return nil, errors.MissingField("level")
	}
	var cfg levelConfig
	if err := decode(data, &cfg); err != nil {
		return nil, err
	}
	level, err := core.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.InvalidInput(err.Error())
	}
	return NewLevelFilter(level)
}
