package format

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kbukum/logkit/core"
)

func fixedRecord(level core.LoggingLevel, message string) *core.LogRecord {
	r := core.NewRecord(level, message)
	r.SetTimestamp(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC))
	return r
}

func TestSimpleFormatter_Format(t *testing.T) {
	got := NewSimpleFormatter().Format(fixedRecord(core.LevelInfo, "hi"))
	want := "[2024-05-01T12:30:00Z INFO]: hi"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSimpleFormatter_ZeroTimestamp(t *testing.T) {
	r := core.NewRecord(core.LevelInfo, "hi")
	r.SetTimestamp(time.Time{})
	got := NewSimpleFormatter().Format(r)
	if !strings.HasPrefix(got, "[N/A ") {
		t.Errorf("expected N/A timestamp fallback, got %q", got)
	}
}

func TestSimpleFormatter_EmptyMessage(t *testing.T) {
	got := NewSimpleFormatter().Format(fixedRecord(core.LevelInfo, ""))
	if !strings.Contains(got, "No message provided") {
		t.Errorf("expected message placeholder, got %q", got)
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	r := fixedRecord(core.LevelInfo, "hi")
	r.Metadata["k"] = "v"
	out := NewJSONFormatter().Format(r)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["message"] != "hi" {
		t.Errorf("expected message 'hi', got %v", parsed["message"])
	}
	if parsed["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", parsed["level"])
	}
	if parsed["timestamp"] != "2024-05-01T12:30:00Z" {
		t.Errorf("expected fixed timestamp, got %v", parsed["timestamp"])
	}
	if parsed["k"] != "v" {
		t.Errorf("metadata should be merged at top level, got %v", parsed["k"])
	}
}

func TestJSONFormatter_Source(t *testing.T) {
	r := core.NewRecordWith(core.LevelWarning, "w", "worker", nil)
	out := NewJSONFormatter().Format(r)
	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["source"] != "worker" {
		t.Errorf("expected source 'worker', got %v", parsed["source"])
	}
}

func TestJSONFormatter_UnencodableMetadata(t *testing.T) {
	r := fixedRecord(core.LevelInfo, "hi")
	r.Metadata["ch"] = make(chan int)
	out := NewJSONFormatter().Format(r)
	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("unencodable metadata should be stringified, got invalid JSON: %v", err)
	}
	if _, ok := parsed["ch"].(string); !ok {
		t.Errorf("expected stringified channel value, got %T", parsed["ch"])
	}
}

func TestFromConfig_RoundTrip(t *testing.T) {
	for _, f := range []Formatter{NewSimpleFormatter(), NewJSONFormatter()} {
		rebuilt, err := FromConfig(f.Config())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rebuilt.Config()["type"] != f.Config()["type"] {
			t.Errorf("round trip changed type: %v != %v", rebuilt.Config()["type"], f.Config()["type"])
		}
	}
}

func TestFromConfig_Aliases(t *testing.T) {
	f, err := FromConfig(map[string]any{"type": "json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.(*JSONFormatter); !ok {
		t.Errorf("expected JSONFormatter, got %T", f)
	}
}

func TestFromConfig_Empty(t *testing.T) {
	f, err := FromConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.(*SimpleFormatter); !ok {
		t.Errorf("expected default SimpleFormatter, got %T", f)
	}
}

func TestFromConfig_UnknownType(t *testing.T) {
	if _, err := FromConfig(map[string]any{"type": "xml"}); err == nil {
		t.Error("expected error for unknown formatter type")
	}
}
