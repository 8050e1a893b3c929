package appender

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
)

// Canonical appender type names used in configuration maps.
const (
	TypeConsole        = "ConsoleAppender"
	TypeColoredConsole = "ColoredConsoleAppender"
	TypeFile           = "FileAppender"
	TypeSQLite         = "SQLiteAppender"
	TypeMySQL          = "MySQLAppender"
	TypeComposite      = "CompositeAppender"
)

var aliases = map[string]string{
	"console":                TypeConsole,
	"consoleappender":        TypeConsole,
	"coloredconsole":         TypeColoredConsole,
	"coloredconsoleappender": TypeColoredConsole,
	"file":                   TypeFile,
	"fileappender":           TypeFile,
	"sqlite":                 TypeSQLite,
	"sqliteappender":         TypeSQLite,
	"mysql":                  TypeMySQL,
	"mysqlappender":          TypeMySQL,
	"composite":              TypeComposite,
	"compositeappender":      TypeComposite,
}

// ResolveType normalizes an appender type string or alias
// (case-insensitive) to its canonical name.
func ResolveType(name string) (string, error) {
	if canonical, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical, nil
	}
	return "", errors.NotFound("appender type", name)
}

// FromConfig builds an appender from a type-discriminated config map.
// Unknown types and missing required fields fail before any resource is
// opened.
func FromConfig(data map[string]any) (Appender, error) {
	rawType, ok := data["type"]
	if !ok {
		return nil, errors.MissingField("type")
	}
	name, ok := rawType.(string)
	if !ok {
		return nil, errors.InvalidInput("appender type must be a string")
	}
	canonical, err := ResolveType(name)
	if err != nil {
		return nil, err
	}

	formatter, filters, err := pipelineFromConfig(data)
	if err != nil {
		return nil, err
	}

	switch canonical {
	case TypeConsole:
		return NewConsoleAppender(formatter, filters...), nil
	case TypeColoredConsole:
		return coloredFromConfig(data, formatter, filters)
	case TypeFile:
		return fileFromConfig(data, formatter, filters)
	case TypeSQLite:
		var cfg SQLiteConfig
		if err := decode(data, &cfg); err != nil {
			return nil, err
		}
		return NewSQLiteAppender(cfg, formatter, filters...)
	case TypeMySQL:
		var cfg MySQLConfig
		if err := decode(data, &cfg); err != nil {
			return nil, err
		}
		return NewMySQLAppender(cfg, formatter, filters...)
	case TypeComposite:
		return compositeFromConfig(data, formatter, filters)
	}
	return nil, errors.NotFound("appender type", name)
}

// FromConfigList builds an ordered appender list from config maps.
func FromConfigList(items []map[string]any) ([]Appender, error) {
	appenders := make([]Appender, 0, len(items))
	for _, item := range items {
		a, err := FromConfig(item)
		if err != nil {
			return nil, err
		}
		appenders = append(appenders, a)
	}
	return appenders, nil
}

// pipelineFromConfig extracts the nested formatter and filter chain
// shared by every appender config.
func pipelineFromConfig(data map[string]any) (format.Formatter, []filter.Filter, error) {
	var shared struct {
		Formatter map[string]any   `mapstructure:"formatter"`
		Filters   []map[string]any `mapstructure:"filters"`
	}
	if err := decode(data, &shared); err != nil {
		return nil, nil, err
	}
	var formatter format.Formatter
	if len(shared.Formatter) > 0 {
		f, err := format.FromConfig(shared.Formatter)
		if err != nil {
			return nil, nil, err
		}
		formatter = f
	}
	filters, err := filter.FromConfigList(shared.Filters)
	if err != nil {
		return nil, nil, err
	}
	return formatter, filters, nil
}

func coloredFromConfig(data map[string]any, formatter format.Formatter, filters []filter.Filter) (Appender, error) {
	var cfg struct {
		Color      string `mapstructure:"color"`
		Unfiltered bool   `mapstructure:"unfiltered"`
	}
	if err := decode(data, &cfg); err != nil {
		return nil, err
	}
	color := core.ColorDefault
	if cfg.Color != "" {
		parsed, err := core.ParseColor(cfg.Color)
		if err != nil {
			return nil, errors.InvalidInput(err.Error())
		}
		color = parsed
	}
	a := NewColoredConsoleAppender(formatter, color, filters...)
	a.SetUnfiltered(cfg.Unfiltered)
	return a, nil
}

func fileFromConfig(data map[string]any, formatter format.Formatter, filters []filter.Filter) (Appender, error) {
	var cfg struct {
		FilePath string `mapstructure:"file_path"`
	}
	if err := decode(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.FilePath == "" {
		return nil, errors.MissingField("file_path")
	}
	return NewFileAppender(cfg.FilePath, formatter, filters...)
}

func compositeFromConfig(data map[string]any, formatter format.Formatter, filters []filter.Filter) (Appender, error) {
	var cfg struct {
		Appenders []map[string]any `mapstructure:"appenders"`
	}
	if err := decode(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Appenders) == 0 {
		return nil, errors.InvalidInput("at least one appender must be provided")
	}
	children, err := FromConfigList(cfg.Appenders)
	if err != nil {
		return nil, err
	}
	return NewCompositeAppender(formatter, children, filters...)
}

// decode maps a config document onto a typed config struct.
func decode(data map[string]any, target any) error {
	if err := mapstructure.Decode(data, target); err != nil {
		return errors.InvalidInput("malformed appender config").WithCause(err)
	}
	return nil
}
