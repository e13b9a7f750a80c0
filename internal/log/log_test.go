package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug": log.DebugLevel,
		"DEBUG": log.DebugLevel,
		"warn":  log.WarnLevel,
		"error": log.ErrorLevel,
		"info":  log.InfoLevel,
		"":      log.InfoLevel,
		"loud":  log.InfoLevel,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestInitLogTo_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLogTo(&buf, "mahc", "warn")

	Info("hidden %d", 1)
	Warn("shown %d", 2)
	Error("plain")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "plain") {
		t.Errorf("error line missing: %q", out)
	}
	if !strings.Contains(out, "mahc") {
		t.Errorf("prefix missing: %q", out)
	}

	buf.Reset()
	SetLevel("debug")
	Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug line missing after SetLevel: %q", buf.String())
	}
}
