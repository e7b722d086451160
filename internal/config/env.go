package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override file settings.
const (
	EnvTheme     = "INKPAD_THEME"
	EnvDPR       = "INKPAD_DPR"
	EnvFontSize  = "INKPAD_FONT_SIZE"
	EnvLogLevel  = "INKPAD_LOG_LEVEL"
	EnvLogFormat = "INKPAD_LOG_FORMAT"
	EnvLogSource = "INKPAD_LOG_SOURCE"
	EnvLogFile   = "INKPAD_LOG_FILE"
)

var envKeys = map[string]string{
	"theme":                     EnvTheme,
	"canvas.device_pixel_ratio": EnvDPR,
	"text.font_size":            EnvFontSize,
	"logging.level":             EnvLogLevel,
	"logging.format":            EnvLogFormat,
	"logging.source":            EnvLogSource,
	"logging.file":              EnvLogFile,
}

func env(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	return v, v != ""
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// ApplyEnv overwrites cfg fields from INKPAD_* variables.
func ApplyEnv(cfg *Config) error {
	if v, ok := env(EnvTheme); ok {
		cfg.Theme = v
	}
	if v, ok := env(EnvDPR); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDPR, err)
		}
		cfg.Canvas.DevicePixelRatio = f
	}
	if v, ok := env(EnvFontSize); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFontSize, err)
		}
		cfg.Text.FontSize = f
	}
	if v, ok := env(EnvLogLevel); ok {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := env(EnvLogFormat); ok {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v, ok := env(EnvLogSource); ok {
		cfg.Logging.Source = truthy(v)
	}
	if v, ok := env(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	return nil
}

// EnvOverrideFor names the variable currently overriding a dotted config
// key, if any.
func EnvOverrideFor(key string) (string, bool) {
	name, ok := envKeys[key]
	if !ok {
		return "", false
	}
	if _, set := env(name); !set {
		return "", false
	}
	return name, true
}
