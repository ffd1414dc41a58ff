// Package sora provides the screens of the Sora cellular app for SDL2:
// tab screens hosting the floating navigation bar, secondary information
// screens, a splash with background work, and confirmation messages.
//
// The package handles SDL initialization, theming, localization, input
// (keyboard, controllers, mouse, SDL touch and an evdev touch panel) and
// haptic feedback through controller rumble.
package sora

import (
	"log/slog"
	"os"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/soracell/sora/pkg/sora/platform/handheld"
)

// Options configures initialization.
type Options struct {
	WindowTitle    string                 // Window title displayed in windowed mode
	WindowOptions  internal.WindowOptions // SDL window flags; zero picks a default for the environment
	FontPath       string                 // TTF font; defaults to the handheld system font
	TouchDevice    string                 // evdev touch panel; empty disables the reader
	Locale         string                 // BCP 47 tag for labels, e.g. "en" or "es"
	LogPath        string                 // Full path for the log file
	LogLevel       string                 // debug, info, warn or error
	RumbleStrength uint16                 // Motor strength for haptics; zero uses the default
	AccentColorHex uint32                 // Optional accent override, 0xRRGGBB
}

var initialized bool

// Init initializes SDL, theming, localization and input.
// Must be called before any screen function.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = handheld.FontPath
	}

	theme := handheld.InitSoraTheme(fontPath)
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	if err := internal.InitI18n(options.Locale); err != nil {
		return NewInfrastructureError("i18n", err)
	}

	err := internal.Init(internal.InitOptions{
		Title:          options.WindowTitle,
		WindowOptions:  options.WindowOptions,
		FontPath:       fontPath,
		TouchDevice:    options.TouchDevice,
		RumbleStrength: options.RumbleStrength,
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}

	initialized = true
	internal.GetInternalLogger().Info("Sora UI initialized",
		"locale", internal.Locale().String(), "dev", constants.IsDevMode())
	return nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if !initialized {
		internal.CloseLogger()
		return
	}
	initialized = false
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// Localize returns the label for a message id in the selected locale.
func Localize(id string) string {
	return internal.Localize(id)
}

// LocalizeWith fills a templated message.
func LocalizeWith(id string, data map[string]any) string {
	return internal.LocalizeWith(id, data)
}

// LocalizePlural picks the plural form of a message for count.
func LocalizePlural(id string, count int, data map[string]any) string {
	return internal.LocalizePlural(id, count, data)
}
