package sora

import (
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/soracell/sora/pkg/sora/navigation"
)

// Config is the application configuration file. See LoadConfig.
type Config = internal.Config

// NavItemConfig is one configured bar destination.
type NavItemConfig = internal.NavItemConfig

// Session is the persisted signed-in flag.
type Session = internal.Session

// SessionStore reads and writes the session flag file.
type SessionStore = internal.SessionStore

var ErrInvalidConfig = internal.ErrInvalidConfig

func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads a TOML config over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

func NewSessionStore(path string) *SessionStore {
	return internal.NewSessionStore(path)
}

// NavItems converts configured items into navigation items. Labels are
// kept as message ids and localized when drawn.
func NavItems(cfg Config) []navigation.Item {
	items := make([]navigation.Item, len(cfg.Items))
	for i, item := range cfg.Items {
		items[i] = navigation.Item{
			Label: item.Label,
			Icon:  navigation.IconID(item.Icon),
			Route: navigation.RouteID(item.Route),
		}
	}
	return items
}

// NavigationOptions builds controller options from the config, wiring
// rumble haptics when the runtime is up.
func NavigationOptions(cfg Config) navigation.Options {
	opts := navigation.Options{
		NavigateDelay: cfg.NavigateDelay,
		HapticPattern: cfg.HapticPattern(),
		Logger:        internal.GetInternalLogger(),
	}
	if h := internal.GetHaptics(); h != nil {
		opts.Haptics = h
	}
	return opts
}
