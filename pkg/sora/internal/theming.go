package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the app.
// The default palette is the deep indigo look of the Sora brand.
type Theme struct {
	BackgroundGradient []sdl.Color // Screen background, top to bottom
	BarGradient        []sdl.Color // Floating bar fill, left to right
	BarBorderColor     sdl.Color   // Thin outline around the floating bar
	ActiveGradient     []sdl.Color // Active button fill and indicator
	InactiveFillColor  sdl.Color   // Translucent fill behind inactive buttons
	ActiveIconColor    sdl.Color   // Icon color on the active button
	InactiveIconColor  sdl.Color   // Muted icon color on inactive buttons
	FocusColor         sdl.Color   // Ring drawn around the D-pad focused button
	AccentColor        sdl.Color   // Pills and highlights on content screens
	TextColor          sdl.Color   // Default text color
	HintColor          sdl.Color   // Secondary text, footers
	FontPath           string      // Path to the primary UI font
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// HexToColorAlpha converts 0xRRGGBB and an opacity in [0,1] into a color.
func HexToColorAlpha(hex uint32, opacity float64) sdl.Color {
	c := HexToColor(hex)
	c.A = uint8(clamp01(opacity)*255 + 0.5)
	return c
}

// LerpColor blends from a to b by t in [0,1].
func LerpColor(a, b sdl.Color, t float64) sdl.Color {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return sdl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// GradientAt samples a multi-stop gradient with evenly spaced stops.
func GradientAt(stops []sdl.Color, t float64) sdl.Color {
	switch len(stops) {
	case 0:
		return sdl.Color{}
	case 1:
		return stops[0]
	}
	t = clamp01(t)
	span := float64(len(stops) - 1)
	i := int(t * span)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return LerpColor(stops[i], stops[i+1], t*span-float64(i))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
