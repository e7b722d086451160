package log

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf})
	t.Cleanup(func() { Init(Options{Level: "error"}) })

	WithComponent("canvas").Debug("commit", "kind", "rect", "w", 1.5, slog.Group("pt", "x", 3))
	line := buf.String()
	for _, want := range []string{"DBG commit", "app=inkpad", "component=canvas", "kind=rect", "w=1.5", "pt.x=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("missing %q in %q", want, line)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "warn", Output: &buf})
	t.Cleanup(func() { Init(Options{Level: "error"}) })
	L().Info("hidden")
	L().Warn("shown", "msg", "has space")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, `msg="has space"`) {
		t.Fatalf("expected quoted value in %q", out)
	}
}

func TestConsoleSource(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Output: &buf, AddSource: true})
	t.Cleanup(func() { Init(Options{Level: "error"}) })
	L().Info("where")
	if out := buf.String(); !strings.Contains(out, " src=") || !strings.Contains(out, "log_test.go:") {
		t.Fatalf("missing call site in %q", out)
	}

	buf.Reset()
	Init(Options{Level: "info", Output: &buf})
	L().Info("where")
	if strings.Contains(buf.String(), "src=") {
		t.Fatalf("source written without AddSource: %q", buf.String())
	}
}

func TestFileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "inkpad.log")
	Init(Options{Level: "info", Output: &buf, File: path})
	t.Cleanup(func() { Init(Options{Level: "error"}) })
	L().Info("to both")
	if !strings.Contains(buf.String(), "to both") {
		t.Fatalf("console missed record: %q", buf.String())
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("INKPAD_LOG_LEVEL", "debug")
	t.Setenv("INKPAD_LOG_FORMAT", "json")
	t.Setenv("INKPAD_LOG_SOURCE", "TRUE")
	t.Setenv("INKPAD_LOG_FILE", "")
	o := FromEnv()
	if o.Level != "debug" || o.Format != "json" || !o.AddSource || o.File != "" {
		t.Fatalf("FromEnv = %+v", o)
	}
	if ParseLevel("bogus") != slog.LevelInfo {
		t.Fatal("unknown level should map to info")
	}
}
