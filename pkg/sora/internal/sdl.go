package internal

import (
	"fmt"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window  *Window
	haptics *RumbleHaptics
	touch   *TouchReader
)

// InitOptions configures the SDL runtime.
type InitOptions struct {
	Title          string
	WindowOptions  WindowOptions
	FontPath       string
	FontSizes      FontSizes
	TouchDevice    string // empty disables the evdev reader
	RumbleStrength uint16
}

// Init brings up SDL, the window, fonts, controllers and optional touch input.
// Failures are returned with the failing step named.
func Init(opts InitOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	winOpts := opts.WindowOptions
	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions(constants.IsDevMode())
	}

	var err error
	if window, err = initWindow(opts.Title, winOpts); err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}

	sizes := opts.FontSizes
	if sizes == (FontSizes{}) {
		sizes = DefaultFontSizes
	}
	if err := initFonts(opts.FontPath, sizes); err != nil {
		window.closeWindow()
		ttf.Quit()
		sdl.Quit()
		return err
	}

	openAttachedControllers()

	strength := opts.RumbleStrength
	if strength == 0 {
		strength = DefaultRumbleStrength
	}
	haptics = NewRumbleHaptics(strength)

	if opts.TouchDevice != "" && !constants.IsDevMode() {
		touch, err = OpenTouchReader(opts.TouchDevice)
		if err != nil {
			// SDL finger events still work on most panels
			GetInternalLogger().Warn("Touch reader unavailable", "device", opts.TouchDevice, "error", err)
			touch = nil
		}
	}

	return nil
}

func GetHaptics() *RumbleHaptics {
	return haptics
}

// GetTouchReader returns nil when no evdev reader is running.
func GetTouchReader() *TouchReader {
	return touch
}

func SDLCleanup() {
	if touch != nil {
		touch.Close()
		touch = nil
	}
	if haptics != nil {
		haptics.Stop()
	}
	DestroyIconCache()
	CloseAllControllers()
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
