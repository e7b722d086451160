// Package config loads the inkpad YAML configuration file and applies
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/example/inkpad/internal/log"
	"github.com/example/inkpad/internal/theme"
)

// CurrentVersion is written to new files.
const CurrentVersion = 1

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// DevicePixelRatio of 0 means ask the window system.
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`
	SelectThreshold  float64 `yaml:"select_threshold"`
	ClearMargin      float64 `yaml:"clear_margin"`
}

type TextConfig struct {
	FontFamily string  `yaml:"font_family"`
	FontSize   float64 `yaml:"font_size"`
}

type StrokeConfig struct {
	Width float64 `yaml:"width"`
}

type KeysConfig struct {
	Delete []string `yaml:"delete"`
}

// Notify selects which events raise a desktop notification.
type Notify struct {
	Copy   bool `yaml:"copy"`
	Delete bool `yaml:"delete"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Config is the whole configuration document.
type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Theme         string        `yaml:"theme"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Text          TextConfig    `yaml:"text"`
	Stroke        StrokeConfig  `yaml:"stroke"`
	Keys          KeysConfig    `yaml:"keys"`
	Notify        Notify        `yaml:"notify"`
	Logging       LoggingConfig `yaml:"logging"`
	// Themes holds inline theme definitions keyed by name; each maps theme
	// field names to #hex colors.
	Themes map[string]map[string]string `yaml:"themes,omitempty"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		ConfigVersion: CurrentVersion,
		Theme:         "default",
		Canvas:        CanvasConfig{Width: 960, Height: 640, SelectThreshold: 10, ClearMargin: 100},
		Text:          TextConfig{FontFamily: "sans", FontSize: 16},
		Stroke:        StrokeConfig{Width: 2},
		Keys:          KeysConfig{Delete: []string{"Delete", "Backspace"}},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Parse decodes a YAML document over the defaults. Keys missing from the
// document keep their default values.
func Parse(r io.Reader) (*Config, error) {
	cfg := Defaults()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first nonsensical setting.
func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.DevicePixelRatio < 0:
		return fmt.Errorf("device_pixel_ratio %v must not be negative", c.Canvas.DevicePixelRatio)
	case c.Canvas.SelectThreshold <= 0:
		return fmt.Errorf("select_threshold %v must be positive", c.Canvas.SelectThreshold)
	case c.Canvas.ClearMargin < 0:
		return fmt.Errorf("clear_margin %v must not be negative", c.Canvas.ClearMargin)
	case c.Text.FontSize <= 0:
		return fmt.Errorf("font_size %v must be positive", c.Text.FontSize)
	case c.Stroke.Width <= 0:
		return fmt.Errorf("stroke width %v must be positive", c.Stroke.Width)
	}
	for name, fields := range c.Themes {
		for k, v := range fields {
			if _, err := theme.ParseColor(v); err != nil {
				return fmt.Errorf("themes.%s.%s: %w", name, k, err)
			}
		}
	}
	return nil
}

// ResolveTheme returns the configured theme, preferring an inline
// definition over one found by the loader.
func (c *Config) ResolveTheme(l *theme.Loader) (*theme.Theme, error) {
	fields, ok := c.Themes[c.Theme]
	if !ok {
		return l.Load(c.Theme)
	}
	t := theme.Default()
	t.Name = c.Theme
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := t.Set(k, fields[k]); err != nil {
			return nil, fmt.Errorf("theme %s: %w", c.Theme, err)
		}
	}
	return t, nil
}

// LogOptions converts the logging section for log.Init.
func (c *Config) LogOptions() log.Options {
	return log.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("# %v\n", err)
	}
	return string(b)
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
