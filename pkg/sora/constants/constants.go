// Package constants defines shared constants, types, and configuration values
// used throughout the sora UI package.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"   // Dev mode window width override
	WindowHeightEnvVar = "WINDOW_HEIGHT"  // Dev mode window height override
	ConfigPathEnvVar   = "SORA_CONFIG"    // Path to the TOML configuration file
	LogLevelEnvVar     = "SORA_LOG_LEVEL" // debug, info, warn or error
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from keyboard keys
// and controller buttons so screens handle both the same way.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultFrameDelay         = 16 * time.Millisecond // Frame pacing when VSync is unavailable
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
)

// Floating bar geometry in logical pixels, measured from the bottom of the
// window. The bar is inset on both sides and floats above the bottom edge.
const (
	BarBottomMargin    int32 = 34
	BarSideMargin      int32 = 24
	BarPaddingVertical int32 = 12
	BarPaddingSide     int32 = 16
	BarCornerRadius    int32 = 24
	ButtonSize         int32 = 56
	IconSize           int32 = 24
	IndicatorWidth     int32 = 24
	IndicatorHeight    int32 = 3
	IndicatorOffset    int32 = 8
	FocusRingWidth     int32 = 2
)
