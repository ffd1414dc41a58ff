// Command sora is the Sora cellular app for SDL2 handhelds and desktops.
//
// Set ENVIRONMENT=DEV to run in a desktop window. SORA_CONFIG points at an
// optional TOML config; SORA_LOG_LEVEL overrides its log level.
package main

import (
	"os"

	"github.com/soracell/sora/pkg/sora"
	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/platform/handheld"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := sora.LoadConfig(os.Getenv(constants.ConfigPathEnvVar))
	if err != nil {
		sora.GetLogger().Error("Failed to load config", "error", err)
		return 1
	}

	sora.SetLogPath(cfg.LogPath)

	items := sora.NavItems(cfg)
	a := newApp(cfg)
	routes := a.routes()
	if err := validateTabRoutes(routes, items); err != nil {
		sora.GetLogger().Error("Invalid navigation items", "error", err)
		return 1
	}

	touch := cfg.TouchDevice
	if touch == "" && !constants.IsDevMode() {
		touch = handheld.TouchDevicePath
	}

	err = sora.Init(sora.Options{
		WindowTitle:    "Sora",
		FontPath:       cfg.FontPath,
		TouchDevice:    touch,
		Locale:         cfg.Locale,
		LogLevel:       cfg.LogLevel,
		RumbleStrength: cfg.RumbleStrength,
	})
	if err != nil {
		sora.GetLogger().Error("Failed to initialize UI", "error", err)
		return 1
	}
	defer sora.Close()

	bar, err := sora.NewTabBar(items, sora.NavigationOptions(cfg))
	if err != nil {
		sora.GetLogger().Error("Invalid navigation items", "error", err)
		return 1
	}
	defer bar.Close()

	a.bar = bar

	if err := routes.Run(RouteIndex, nil); err != nil {
		sora.GetLogger().Error("App stopped", "error", err)
		return 1
	}
	return 0
}
