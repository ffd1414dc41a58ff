// Package handheld provides theming and device defaults for running the app
// full screen on Linux handhelds with a touch panel and rumble motor.
package handheld

import (
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Device defaults for handheld builds.
const (
	FontPath        = "/mnt/SDCARD/System/fonts/Sora.ttf"
	TouchDevicePath = "/dev/input/event1"
)

// InitSoraTheme creates the Sora brand theme with the specified font.
func InitSoraTheme(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundGradient: []sdl.Color{
			internal.HexToColor(0x0F0F23),
			internal.HexToColor(0x1E1B4B),
			internal.HexToColor(0x312E81),
		},
		BarGradient: []sdl.Color{
			internal.HexToColorAlpha(0x0F0F23, 0.9),
			internal.HexToColorAlpha(0x1E1B4B, 0.9),
		},
		BarBorderColor: internal.HexToColorAlpha(0x6366F1, 0.2),
		ActiveGradient: []sdl.Color{
			internal.HexToColor(0x6366F1),
			internal.HexToColor(0x8B5CF6),
		},
		InactiveFillColor: internal.HexToColorAlpha(0xFFFFFF, 0.1),
		ActiveIconColor:   internal.HexToColor(0xFFFFFF),
		InactiveIconColor: internal.HexToColor(0x9CA3AF),
		FocusColor:        internal.HexToColorAlpha(0xFFFFFF, 0.6),
		AccentColor:       internal.HexToColor(0x6366F1),
		TextColor:         internal.HexToColor(0xFFFFFF),
		HintColor:         internal.HexToColor(0x9CA3AF),
		FontPath:          fontPath,
	}
}
