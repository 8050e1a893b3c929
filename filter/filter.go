package filter

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
)

// Filter decides whether a record should be written by an appender.
type Filter interface {
	ShouldLog(record *core.LogRecord) bool
	// Config returns the type-discriminated configuration map that
	// FromConfig accepts to rebuild the filter.
	Config() map[string]any
}

// TypeKeyword and TypeLevel are the canonical filter type names used in
// configuration maps.
const (
	TypeKeyword = "KeywordFilter"
	TypeLevel   = "LevelFilter"
)

var aliases = map[string]string{
	"keyword":       TypeKeyword,
	"keywordfilter": TypeKeyword,
	"level":         TypeLevel,
	"levelfilter":   TypeLevel,
}

// ResolveType normalizes a filter type string or alias to its canonical
// name.
func ResolveType(name string) (string, error) {
	if canonical, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical, nil
	}
	return "", errors.NotFound("filter type", name)
}

// FromConfig builds a filter from a type-discriminated config map.
func FromConfig(data map[string]any) (Filter, error) {
	rawType, ok := data["type"]
	if !ok {
		return nil, errors.MissingField("type")
	}
	name, ok := rawType.(string)
	if !ok {
		return nil, errors.InvalidInput("filter type must be a string")
	}
	canonical, err := ResolveType(name)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case TypeKeyword:
		return keywordFromConfig(data)
	case TypeLevel:
		return levelFromConfig(data)
	}
	return nil, errors.NotFound("filter type", name)
}

// FromConfigList builds a filter chain from a list of config maps.
func FromConfigList(items []map[string]any) ([]Filter, error) {
	filters := make([]Filter, 0, len(items))
	for _, item := range items {
		f, err := FromConfig(item)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// decode maps a config document onto a typed config struct.
func decode(data map[string]any, target any) error {
	if err := mapstructure.Decode(data, target); err != nil {
		return errors.InvalidInput("malformed filter config").WithCause(err)
	}
	return nil
}
