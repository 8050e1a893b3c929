package appender

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/filter"
	"github.com/kbukum/logkit/format"
)

func TestConsoleAppender_Append(t *testing.T) {
	var buf bytes.Buffer
	a := NewConsoleAppender(format.NewSimpleFormatter())
	a.SetOutput(&buf)

	if err := a.Append(core.NewRecord(core.LevelInfo, "hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "hello\n") {
		t.Errorf("expected newline-terminated line, got %q", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected level name in output, got %q", out)
	}
}

func TestConsoleAppender_FilterRejection(t *testing.T) {
	var buf bytes.Buffer
	lf, _ := filter.NewLevelFilter(core.LevelError)
	a := NewConsoleAppender(nil, lf)
	a.SetOutput(&buf)

	if err := a.Append(core.NewRecord(core.LevelInfo, "quiet")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("rejected record should not be written, got %q", buf.String())
	}
}

func TestConsoleAppender_FilterChainAND(t *testing.T) {
	var buf bytes.Buffer
	lf, _ := filter.NewLevelFilter(core.LevelDebug)
	kf := filter.NewKeywordFilter("needle")
	a := NewConsoleAppender(nil, lf, kf)
	a.SetOutput(&buf)

	_ = a.Append(core.NewRecord(core.LevelError, "no match here"))
	if buf.Len() != 0 {
		t.Error("one failing filter should suppress the write")
	}
	_ = a.Append(core.NewRecord(core.LevelError, "found the needle"))
	if buf.Len() == 0 {
		t.Error("record passing all filters should be written")
	}
}

func TestConsoleAppender_DefaultFormatter(t *testing.T) {
	a := NewConsoleAppender(nil)
	if _, ok := a.Formatter().(*format.SimpleFormatter); !ok {
		t.Errorf("expected default SimpleFormatter, got %T", a.Formatter())
	}
	if !a.UsingDefaultFormatter() {
		t.Error("formatter should be marked as defaulted")
	}
	a.SetFormatter(format.NewJSONFormatter())
	if a.UsingDefaultFormatter() {
		t.Error("explicitly set formatter should not be marked as defaulted")
	}
}

func TestColoredConsoleAppender_Append(t *testing.T) {
	var buf bytes.Buffer
	a := NewColoredConsoleAppender(format.NewSimpleFormatter(), core.ColorRed)
	a.SetOutput(&buf)

	if err := a.Append(core.NewRecord(core.LevelError, "boom")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, string(core.ColorRed)) {
		t.Errorf("expected color prefix, got %q", out)
	}
	if !strings.Contains(out, string(core.ColorReset)) {
		t.Errorf("expected reset code, got %q", out)
	}
}

func TestColoredConsoleAppender_FilteredByDefault(t *testing.T) {
	var buf bytes.Buffer
	lf, _ := filter.NewLevelFilter(core.LevelError)
	a := NewColoredConsoleAppender(nil, core.ColorGreen, lf)
	a.SetOutput(&buf)

	_ = a.Append(core.NewRecord(core.LevelInfo, "quiet"))
	if buf.Len() != 0 {
		t.Error("colored appender should honor its filter chain by default")
	}
}

func TestColoredConsoleAppender_Unfiltered(t *testing.T) {
	var buf bytes.Buffer
	lf, _ := filter.NewLevelFilter(core.LevelError)
	a := NewColoredConsoleAppender(nil, core.ColorGreen, lf)
	a.SetOutput(&buf)
	a.SetUnfiltered(true)

	_ = a.Append(core.NewRecord(core.LevelInfo, "loud"))
	if buf.Len() == 0 {
		t.Error("unfiltered mode should bypass the filter chain")
	}
}

func TestColoredConsoleAppender_SetColor(t *testing.T) {
	var buf bytes.Buffer
	a := NewColoredConsoleAppender(nil, core.ColorRed)
	a.SetOutput(&buf)
	a.SetColor(core.ColorBlue)

	_ = a.Append(core.NewRecord(core.LevelInfo, "tinted"))
	if !strings.HasPrefix(buf.String(), string(core.ColorBlue)) {
		t.Errorf("expected runtime color change, got %q", buf.String())
	}
}
