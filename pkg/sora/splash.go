package sora

import (
	"time"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/soracell/sora/pkg/sora/navigation"
	"github.com/veandco/go-sdl2/sdl"
)

// SplashSettings configures a Splash.
type SplashSettings struct {
	MinDuration time.Duration  // Keep the splash up at least this long
	Message     string         // Status line under the subtitle
	Progress    func() float64 // Optional 0..1 progress, polled every frame from the UI goroutine
}

type workResult struct {
	value any
	err   error
}

// Splash shows the brand splash while work runs on its own goroutine and
// returns work's result once it finishes and MinDuration has passed.
// A nil work just waits out MinDuration. Closing the window returns
// ErrCancelled without waiting for work.
func Splash(title, subtitle string, work func() (any, error), settings SplashSettings) (any, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	done := make(chan workResult, 1)
	if work == nil {
		done <- workResult{}
	} else {
		go func() {
			v, err := work()
			done <- workResult{value: v, err: err}
		}()
	}

	start := time.Now()
	var finished *workResult

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil, ErrCancelled
			}
			internal.MapInputEvent(event)
		}

		if finished == nil {
			select {
			case r := <-done:
				finished = &r
			default:
			}
		}

		elapsed := time.Since(start)
		if finished != nil && elapsed >= settings.MinDuration {
			return finished.value, finished.err
		}

		renderSplash(renderer, window, title, subtitle, settings, elapsed)
	}
}

func renderSplash(renderer *sdl.Renderer, window *internal.Window, title, subtitle string, settings SplashSettings, elapsed time.Duration) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	window.RenderBackground()

	w, h := window.GetWidth(), window.GetHeight()
	bob := int32(navigation.FloatOffset(elapsed))

	const logoSize int32 = 96
	logo := sdl.Rect{X: (w - logoSize) / 2, Y: h/2 - logoSize - 40 + bob, W: logoSize, H: logoSize}
	internal.FillRoundedGradient(renderer, logo, 28, theme.ActiveGradient, false)
	if texture, err := internal.IconTexture(renderer, constants.IconCellular, 48, theme.ActiveIconColor); err == nil {
		cx, cy := rectCenter(logo)
		dst := centeredRect(cx, cy, 48, 48)
		renderer.Copy(texture, nil, &dst)
	}

	y := logo.Y + logo.H + 28 - bob
	_, th := internal.RenderText(renderer, fonts.Large, title, theme.TextColor, w/2, y, constants.TextAlignCenter)
	y += th + constants.DefaultTitleSpacing
	_, sh := internal.RenderText(renderer, fonts.Small, subtitle, theme.HintColor, w/2, y, constants.TextAlignCenter)
	y += sh + 24

	if settings.Message != "" {
		_, mh := internal.RenderText(renderer, fonts.Small, settings.Message, theme.HintColor, w/2, y, constants.TextAlignCenter)
		y += mh + 16
	}

	if settings.Progress != nil {
		const trackWidth, trackHeight int32 = 320, 8
		track := sdl.Rect{X: (w - trackWidth) / 2, Y: y, W: trackWidth, H: trackHeight}
		internal.FillRoundedRect(renderer, track, trackHeight/2, theme.InactiveFillColor)

		p := min(max(settings.Progress(), 0), 1)
		if fill := int32(float64(trackWidth) * p); fill > 0 {
			internal.FillRoundedGradient(renderer, sdl.Rect{X: track.X, Y: track.Y, W: fill, H: trackHeight}, trackHeight/2, theme.ActiveGradient, true)
		}
	}

	window.Present()
}
