package core

import (
	"fmt"
	"strings"
)

// LoggingLevel is the severity of a log record. Levels are ordered
// DEBUG < INFO < WARNING < ERROR < CRITICAL.
type LoggingLevel int

const (
	LevelDebug LoggingLevel = iota + 1
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[LoggingLevel]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

// String returns the canonical upper-case name of the level, or a
// numeric placeholder for unknown values.
func (l LoggingLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Valid reports whether l is one of the five defined levels.
func (l LoggingLevel) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel resolves a level name (case-insensitive) to a LoggingLevel.
func ParseLevel(name string) (LoggingLevel, error) {
	for lvl, n := range levelNames {
		if strings.EqualFold(name, n) {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf("unknown logging level: %q", name)
}

// Levels returns the defined levels in ascending severity order.
func Levels() []LoggingLevel {
	return []LoggingLevel{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
}
