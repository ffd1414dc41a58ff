package internal

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/soracell/sora/pkg/sora/constants"
)

// NavItemConfig is one [[item]] table.
type NavItemConfig struct {
	Label string `toml:"label"` // message id, localized when drawn
	Icon  string `toml:"icon"`
	Route string `toml:"route"`
}

// Config is the on-disk application configuration.
//
//	locale = "en"
//	log_level = "info"
//	navigate_delay = "100ms"
//	haptic_pattern_ms = [0, 50, 50, 50]
//
//	[[item]]
//	label = "nav_home"
//	icon = "home"
//	route = "/(tabs)/home"
type Config struct {
	Locale          string          `toml:"locale"`
	LogLevel        string          `toml:"log_level"`
	NavigateDelay   time.Duration   `toml:"navigate_delay"`
	HapticPatternMS []int64         `toml:"haptic_pattern_ms"`
	RumbleStrength  uint16          `toml:"rumble_strength"`
	TouchDevice     string          `toml:"touch_device"`
	FontPath        string          `toml:"font_path"`
	SessionPath     string          `toml:"session_path"`
	LogPath         string          `toml:"log_path"`
	SignInDelay     time.Duration   `toml:"sign_in_delay"`
	Items           []NavItemConfig `toml:"item"`
}

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// DefaultConfig returns the built-in configuration with the three tabs.
func DefaultConfig() Config {
	return Config{
		Locale:          "en",
		LogLevel:        "info",
		NavigateDelay:   100 * time.Millisecond,
		HapticPatternMS: []int64{0, 50, 50, 50},
		RumbleStrength:  DefaultRumbleStrength,
		SessionPath:     "data/session.toml",
		LogPath:         DefaultLogPath,
		SignInDelay:     time.Second,
		Items: []NavItemConfig{
			{Label: "nav_home", Icon: constants.IconHome, Route: "/(tabs)/home"},
			{Label: "nav_plans", Icon: constants.IconCellular, Route: "/(tabs)/plans"},
			{Label: "nav_settings", Icon: constants.IconSettings, Route: "/(tabs)/settings"},
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults. Keys the file sets to unknown names are logged and ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(string(data))
}

// ParseConfig decodes TOML text over the defaults and validates the result.
func ParseConfig(text string) (Config, error) {
	cfg := DefaultConfig()
	items := cfg.Items
	cfg.Items = nil

	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if !md.IsDefined("item") {
		cfg.Items = items
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		GetInternalLogger().Warn("Ignoring unknown config keys", "keys", strings.Join(keys, ","))
	}

	return cfg, cfg.Validate()
}

// Validate checks the fields the navigation bar relies on.
func (c Config) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("%w: at least one [[item]] is required", ErrInvalidConfig)
	}

	seen := make(map[string]int, len(c.Items))
	for i, item := range c.Items {
		if item.Route == "" {
			return fmt.Errorf("%w: item %d has no route", ErrInvalidConfig, i)
		}
		if prev, dup := seen[item.Route]; dup {
			return fmt.Errorf("%w: items %d and %d share route %q", ErrInvalidConfig, prev, i, item.Route)
		}
		seen[item.Route] = i
		if _, ok := constants.IconSVG[item.Icon]; !ok {
			return fmt.Errorf("%w: item %d has unknown icon %q", ErrInvalidConfig, i, item.Icon)
		}
	}

	if c.NavigateDelay < 0 {
		return fmt.Errorf("%w: navigate_delay must not be negative", ErrInvalidConfig)
	}
	if c.SignInDelay < 0 {
		return fmt.Errorf("%w: sign_in_delay must not be negative", ErrInvalidConfig)
	}
	for i, ms := range c.HapticPatternMS {
		if ms < 0 {
			return fmt.Errorf("%w: haptic_pattern_ms[%d] is negative", ErrInvalidConfig, i)
		}
	}
	if _, ok := ParseLogLevel(c.LogLevel); !ok && c.LogLevel != "" {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// HapticPattern converts the millisecond pattern to durations.
func (c Config) HapticPattern() []time.Duration {
	pattern := make([]time.Duration, len(c.HapticPatternMS))
	for i, ms := range c.HapticPatternMS {
		pattern[i] = time.Duration(ms) * time.Millisecond
	}
	return pattern
}
