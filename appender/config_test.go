package appender

import (
	"path/filepath"
	"testing"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/format"
)

func TestFromConfig_ConsoleAlias(t *testing.T) {
	a, err := FromConfig(map[string]any{"type": "console"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.(*ConsoleAppender); !ok {
		t.Errorf("expected ConsoleAppender, got %T", a)
	}
}

func TestFromConfig_CaseInsensitiveAlias(t *testing.T) {
	a, err := FromConfig(map[string]any{"type": "ConsoleAppender"})
	if err != nil {
		t.Fatalf("canonical name should resolve: %v", err)
	}
	if _, ok := a.(*ConsoleAppender); !ok {
		t.Errorf("expected ConsoleAppender, got %T", a)
	}
	if _, err := FromConfig(map[string]any{"type": "CONSOLE"}); err != nil {
		t.Errorf("aliases are case-insensitive, got %v", err)
	}
}

func TestFromConfig_NestedFormatterAndFilters(t *testing.T) {
	a, err := FromConfig(map[string]any{
		"type":      "console",
		"formatter": map[string]any{"type": "json"},
		"filters": []any{
			map[string]any{"type": "level", "level": "ERROR"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ca := a.(*ConsoleAppender)
	if _, ok := ca.Formatter().(*format.JSONFormatter); !ok {
		t.Errorf("expected nested JSONFormatter, got %T", ca.Formatter())
	}
	if len(ca.Filters()) != 1 {
		t.Errorf("expected 1 filter, got %d", len(ca.Filters()))
	}
}

func TestFromConfig_ColoredConsole(t *testing.T) {
	a, err := FromConfig(map[string]any{"type": "coloredconsole", "color": "red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	colored, ok := a.(*ColoredConsoleAppender)
	if !ok {
		t.Fatalf("expected ColoredConsoleAppender, got %T", a)
	}
	if colored.Color() != core.ColorRed {
		t.Errorf("expected red, got %q", colored.Color())
	}
}

func TestFromConfig_FileMissingPath(t *testing.T) {
	_, err := FromConfig(map[string]any{"type": "file"})
	if !errors.HasCode(err, errors.ErrCodeMissingField) {
		t.Errorf("expected MISSING_FIELD for file_path, got %v", err)
	}
}

func TestFromConfig_MySQLMissingFields(t *testing.T) {
	// Required-field validation must fail before any connection attempt.
	_, err := FromConfig(map[string]any{"type": "mysql", "host": "localhost"})
	if err == nil {
		t.Fatal("expected error for missing mysql fields")
	}
	if !errors.HasCode(err, errors.ErrCodeMissingField) {
		t.Errorf("expected MISSING_FIELD, got %v", err)
	}
}

func TestFromConfig_SQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.db")
	a, err := FromConfig(map[string]any{"type": "sqlite", "db_path": path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = a.Teardown() }()

	cfg := a.Config()
	if cfg["type"] != TypeSQLite {
		t.Errorf("expected %s, got %v", TypeSQLite, cfg["type"])
	}
	if cfg["db_path"] != path {
		t.Errorf("expected db_path to round-trip, got %v", cfg["db_path"])
	}
	if cfg["table_name"] != "logs" {
		t.Errorf("expected default table name, got %v", cfg["table_name"])
	}
}

func TestFromConfig_Composite(t *testing.T) {
	a, err := FromConfig(map[string]any{
		"type": "composite",
		"appenders": []any{
			map[string]any{"type": "console"},
			map[string]any{"type": "coloredconsole", "color": "cyan"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := a.(*CompositeAppender)
	if !ok {
		t.Fatalf("expected CompositeAppender, got %T", a)
	}
	if len(c.Appenders()) != 2 {
		t.Errorf("expected 2 children, got %d", len(c.Appenders()))
	}
}

func TestFromConfig_CompositeEmpty(t *testing.T) {
	_, err := FromConfig(map[string]any{"type": "composite"})
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for empty composite, got %v", err)
	}
}

func TestFromConfig_UnknownType(t *testing.T) {
	_, err := FromConfig(map[string]any{"type": "syslog"})
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestFromConfig_MissingType(t *testing.T) {
	_, err := FromConfig(map[string]any{})
	if !errors.HasCode(err, errors.ErrCodeMissingField) {
		t.Errorf("expected MISSING_FIELD for type, got %v", err)
	}
}
