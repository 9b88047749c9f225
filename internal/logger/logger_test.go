package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetup_InfoLevelHidesDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := Setup(Config{Out: &buf})

	l.Debug("hidden")
	l.Info("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "k=1") {
		t.Fatalf("info record missing: %q", out)
	}
	if slog.Default() != l {
		t.Fatalf("Setup did not install the default logger")
	}
}

func TestSetup_DebugLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := Setup(Config{Debug: true, Out: &buf})
	l.Debug("visible")

	out := buf.String()
	if !strings.Contains(out, "logger.initialized") || !strings.Contains(out, "msg=visible") {
		t.Fatalf("debug records missing: %q", out)
	}
	if !strings.Contains(out, "source=") {
		t.Fatalf("expected source attribute in debug mode: %q", out)
	}
}
