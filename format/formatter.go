package format

import (
	"strings"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
)

// Formatter renders a log record to a string. Implementations are pure:
// formatting never mutates the record and never fails (unencodable
// metadata values are stringified).
type Formatter interface {
	Format(record *core.LogRecord) string
	// Config returns the type-discriminated configuration map that
	// FromConfig accepts to rebuild the formatter.
	Config() map[string]any
}

// TypeSimple and TypeJSON are the canonical formatter type names used in
// configuration maps.
const (
	TypeSimple = "SimpleFormatter"
	TypeJSON   = "JSONFormatter"
)

// aliases maps lower-case config aliases to canonical type names.
var aliases = map[string]string{
	"simple":          TypeSimple,
	"simpleformatter": TypeSimple,
	"json":            TypeJSON,
	"jsonformatter":   TypeJSON,
}

// ResolveType normalizes a formatter type string or alias to its
// canonical name.
func ResolveType(name string) (string, error) {
	if canonical, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical, nil
	}
	return "", errors.NotFound("formatter type", name)
}

// FromConfig builds a formatter from a type-discriminated config map.
// An absent map yields the default SimpleFormatter.
func FromConfig(data map[string]any) (Formatter, error) {
	if len(data) == 0 {
		return NewSimpleFormatter(), nil
	}
	rawType, ok := data["type"]
	if !ok {
		return nil, errors.MissingField("type")
	}
	name, ok := rawType.(string)
	if !ok {
		return nil, errors.InvalidInput("formatter type must be a string")
	}
	canonical, err := ResolveType(name)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case TypeSimple:
		return NewSimpleFormatter(), nil
	case TypeJSON:
		return NewJSONFormatter(), nil
	}
	return nil, errors.NotFound("formatter type", name)
}
