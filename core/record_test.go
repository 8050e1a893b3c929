package core

import (
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	before := time.Now()
	r := NewRecord(LevelInfo, "hello")
	after := time.Now()

	if r.Level != LevelInfo {
		t.Errorf("expected INFO, got %s", r.Level)
	}
	if r.Message != "hello" {
		t.Errorf("expected message 'hello', got %q", r.Message)
	}
	if r.Timestamp.Before(before) || r.Timestamp.After(after) {
		t.Error("timestamp should default to the creation instant")
	}
	if r.Metadata == nil {
		t.Error("metadata should default to an empty map")
	}
}

func TestNewRecordWith(t *testing.T) {
	md := map[string]any{"k": "v"}
	r := NewRecordWith(LevelError, "boom", "worker", md)
	if r.Source != "worker" {
		t.Errorf("expected source 'worker', got %q", r.Source)
	}
	if r.Metadata["k"] != "v" {
		t.Errorf("expected metadata k=v, got %v", r.Metadata["k"])
	}
}

func TestLogRecord_SetTimestamp(t *testing.T) {
	r := NewRecord(LevelDebug, "x")
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.SetTimestamp(ts)
	if !r.Timestamp.Equal(ts) {
		t.Errorf("expected %v, got %v", ts, r.Timestamp)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("RED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != ColorRed {
		t.Errorf("expected red escape, got %q", c)
	}
	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestColorName(t *testing.T) {
	if got := ColorName(ColorCyan); got != "cyan" {
		t.Errorf("expected 'cyan', got %q", got)
	}
}
