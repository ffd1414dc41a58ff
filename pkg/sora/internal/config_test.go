package internal

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Items) != 3 {
		t.Errorf("default items = %d, want 3", len(cfg.Items))
	}
	if cfg.NavigateDelay != 100*time.Millisecond {
		t.Errorf("default delay = %v", cfg.NavigateDelay)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
locale = "es"
navigate_delay = "250ms"
sign_in_delay = "2s"
haptic_pattern_ms = [0, 30]

[[item]]
label = "nav_home"
icon = "home"
route = "/a"

[[item]]
label = "nav_settings"
icon = "settings"
route = "/b"
`)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Locale != "es" {
		t.Errorf("locale = %q", cfg.Locale)
	}
	if cfg.NavigateDelay != 250*time.Millisecond {
		t.Errorf("navigate_delay = %v", cfg.NavigateDelay)
	}
	if cfg.SignInDelay != 2*time.Second {
		t.Errorf("sign_in_delay = %v", cfg.SignInDelay)
	}
	if got, want := cfg.HapticPattern(), []time.Duration{0, 30 * time.Millisecond}; !slices.Equal(got, want) {
		t.Errorf("haptic pattern = %v, want %v", got, want)
	}
	if len(cfg.Items) != 2 || cfg.Items[1].Route != "/b" {
		t.Errorf("items = %+v", cfg.Items)
	}
	if cfg.SessionPath != DefaultConfig().SessionPath {
		t.Errorf("unset session_path lost its default: %q", cfg.SessionPath)
	}
}

func TestParseConfigKeepsDefaultItems(t *testing.T) {
	cfg, err := ParseConfig(`locale = "en"`)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if !slices.Equal(cfg.Items, DefaultConfig().Items) {
		t.Errorf("items = %+v, want defaults", cfg.Items)
	}
}

func TestParseConfigIgnoresUnknownKeys(t *testing.T) {
	if _, err := ParseConfig(`colour = "blue"`); err != nil {
		t.Errorf("unknown key rejected: %v", err)
	}
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no items", "item = []"},
		{"empty route", "[[item]]\nicon = \"home\"\n"},
		{"duplicate route", "[[item]]\nicon = \"home\"\nroute = \"/a\"\n[[item]]\nicon = \"settings\"\nroute = \"/a\"\n"},
		{"unknown icon", "[[item]]\nicon = \"rocket\"\nroute = \"/a\"\n"},
		{"negative delay", `navigate_delay = "-5ms"`},
		{"negative haptic", "haptic_pattern_ms = [0, -1]"},
		{"bad log level", `log_level = "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.text)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseConfigSyntaxError(t *testing.T) {
	_, err := ParseConfig("locale = ")
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg.Locale != "en" {
		t.Errorf("locale = %q", cfg.Locale)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
