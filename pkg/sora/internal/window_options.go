package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless        bool
	Resizable         bool
	Fullscreen        bool
	FullscreenDesktop bool
	Hidden            bool // omits SDL_WINDOW_SHOWN
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// DefaultWindowOptions returns a resizable desktop window in dev mode and a
// borderless desktop-fullscreen window on devices.
func DefaultWindowOptions(devMode bool) WindowOptions {
	if devMode {
		return WindowOptions{Resizable: true}
	}
	return WindowOptions{Borderless: true, FullscreenDesktop: true}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
