package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Dev mode window size when no override is set.
const (
	DevWindowWidth  int32 = 1024
	DevWindowHeight int32 = 768
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	width, height   int32
	hasVSync        bool
	lastPresentTime uint64
}

// devWindowSize resolves the dev window size from WINDOW_WIDTH and
// WINDOW_HEIGHT, falling back to the defaults on missing or invalid values.
func devWindowSize(getenv func(string) string) (int32, int32) {
	parse := func(name string, fallback int32) int32 {
		v := getenv(name)
		if v == "" {
			return fallback
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			GetInternalLogger().Warn("Invalid window size override; using default",
				"variable", name, "value", v, "default", fallback)
			return fallback
		}
		return int32(n)
	}
	return parse(constants.WindowWidthEnvVar, DevWindowWidth),
		parse(constants.WindowHeightEnvVar, DevWindowHeight)
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	var width, height int32
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		width, height = devWindowSize(os.Getenv)
		x, y = 50, 50
	} else {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, fmt.Errorf("get display mode: %w", err)
		}
		width, height = mode.W, mode.H
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable; falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}, nil
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth returns the logical width everything is laid out against.
func (window *Window) GetWidth() int32 {
	return window.width
}

func (window *Window) GetHeight() int32 {
	return window.height
}

// RenderBackground fills the window with the theme's vertical background gradient.
func (window *Window) RenderBackground() {
	stops := GetTheme().BackgroundGradient
	r := window.Renderer
	if len(stops) == 0 {
		r.SetDrawColor(0, 0, 0, 255)
		r.Clear()
		return
	}

	for y := int32(0); y < window.height; y++ {
		c := GradientAt(stops, float64(y)/float64(max(window.height-1, 1)))
		r.SetDrawColor(c.R, c.G, c.B, c.A)
		r.FillRect(&sdl.Rect{X: 0, Y: y, W: window.width, H: 1})
	}
}

// Present swaps the render buffer and holds roughly 60fps when VSync is
// not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.DefaultFrameDelay.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
