package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/inkpad/internal/theme"
)

func TestParse(t *testing.T) {
	input := `
theme: mine
canvas:
  width: 800
  select_threshold: 6
text:
  font_family: mono
notify:
  delete: true
keys:
  delete: [x]
themes:
  mine:
    Ink: "#112233"
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Theme != "mine" || cfg.Canvas.Width != 800 || cfg.Canvas.SelectThreshold != 6 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Canvas.Height != 640 || cfg.Text.FontSize != 16 || cfg.Canvas.ClearMargin != 100 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
	if !cfg.Notify.Delete || cfg.Notify.Copy {
		t.Errorf("notify = %+v", cfg.Notify)
	}
	if len(cfg.Keys.Delete) != 1 || cfg.Keys.Delete[0] != "x" {
		t.Errorf("keys = %v", cfg.Keys.Delete)
	}
	th, err := cfg.ResolveTheme(&theme.Loader{})
	if err != nil {
		t.Fatalf("ResolveTheme: %v", err)
	}
	if th.Name != "mine" || th.Ink.R != 0x11 || th.Ink.B != 0x33 {
		t.Errorf("theme = %+v", th)
	}
}

func TestParseEmptyIsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.String() != Defaults().String() {
		t.Fatalf("empty document differs from defaults:\n%s", cfg)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, in := range []string{
		"canvas: {width: 0}",
		"text: {font_size: -1}",
		"themes: {x: {Ink: notacolor}}",
		"themes: {x: {Ink: \"#zz0000\"}}",
		"canvas: [1, 2]",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}

func TestParseAcceptsNamedThemeColor(t *testing.T) {
	cfg, err := Parse(strings.NewReader("themes: {x: {Ink: blue}}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cfg.Themes["x"]["Ink"]; got != "blue" {
		t.Fatalf("Ink = %q", got)
	}
}

func TestCircular(t *testing.T) {
	cfg := Defaults()
	cfg.Theme = "dark"
	cfg.Notify.Copy = true
	cfg.Canvas.DevicePixelRatio = 2
	cfg.Themes = map[string]map[string]string{"custom": {"Paper": "#000000"}}

	back, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.String() != cfg.String() {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", back, cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTheme, "blueprint")
	t.Setenv(EnvDPR, "1.5")
	t.Setenv(EnvLogSource, "yes")
	cfg := Defaults()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Theme != "blueprint" || cfg.Canvas.DevicePixelRatio != 1.5 || !cfg.Logging.Source {
		t.Fatalf("cfg = %+v", cfg)
	}
	if name, ok := EnvOverrideFor("canvas.device_pixel_ratio"); !ok || name != EnvDPR {
		t.Fatalf("EnvOverrideFor = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("logging.file"); ok {
		t.Fatal("unset variable reported as override")
	}
	t.Setenv(EnvDPR, "lots")
	if err := ApplyEnv(Defaults()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, k := range []string{EnvTheme, EnvDPR, EnvFontSize, EnvLogLevel, EnvLogFormat, EnvLogSource, EnvLogFile} {
		t.Setenv(k, "")
	}

	l := NewLoader("1.0", "")
	if l.Path() != "" {
		t.Fatalf("Path = %q with no files", l.Path())
	}
	cfg, err := l.Load()
	if err != nil || cfg.Theme != "default" {
		t.Fatalf("Load = %+v, %v", cfg, err)
	}

	saved := Defaults()
	saved.Theme = "dark"
	if err := saved.Save(DefaultPath()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := l.Path(); got != filepath.Join(xdg, "inkpad", "config.yaml") {
		t.Fatalf("Path = %q", got)
	}

	override := filepath.Join(t.TempDir(), "other.yaml")
	if err := os.WriteFile(override, []byte("theme: blueprint\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewLoader("1.0", override).Load()
	if err != nil || cfg.Theme != "blueprint" {
		t.Fatalf("override Load = %+v, %v", cfg, err)
	}
	cfg, err = l.Load()
	if err != nil || cfg.Theme != "dark" {
		t.Fatalf("xdg Load = %+v, %v", cfg, err)
	}
}
