package sora

import (
	"time"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// InfoContent is a secondary screen: a header, read-only rows and an
// optional primary action.
type InfoContent struct {
	Title       string
	Subtitle    string
	Rows        []ContentRow
	ActionLabel string // Empty hides the action button
}

// InfoScreenSettings configures an InfoScreen.
type InfoScreenSettings struct {
	DisableBack     bool // Hide the back chevron and ignore B
	FooterHelpItems []FooterHelpItem
}

const (
	backButtonSize int32 = 44
	actionHeight   int32 = 56
)

type infoScreenController struct {
	content     InfoContent
	settings    InfoScreenSettings
	list        rowList
	directional internal.DirectionalInput

	backRect   sdl.Rect
	actionRect sdl.Rect

	result    *InfoResult
	cancelled bool
}

// InfoScreen shows a secondary screen until the user backs out or
// confirms the action. Up and down scroll the rows.
func InfoScreen(content InfoContent, settings InfoScreenSettings) (*InfoResult, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	c := &infoScreenController{
		content:     content,
		settings:    settings,
		list:        newRowList(content.Rows, false),
		directional: internal.NewDirectionalInput(),
	}
	c.layout(window)

	for {
		now := time.Now()
		if !c.handleEvents(now) {
			break
		}
		c.render(renderer, window)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}
	return c.result, nil
}

func (c *infoScreenController) layout(window *internal.Window) {
	w, h := window.GetWidth(), window.GetHeight()
	c.backRect = sdl.Rect{X: screenMargin, Y: headerTop, W: backButtonSize, H: backButtonSize}

	bottom := h - screenMargin - 24
	if c.content.ActionLabel != "" {
		c.actionRect = sdl.Rect{X: screenMargin, Y: bottom - actionHeight, W: w - 2*screenMargin, H: actionHeight}
		bottom = c.actionRect.Y - rowGap
	}
	c.list.bottom = bottom
}

func (c *infoScreenController) handleEvents(now time.Time) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT && e.Which != sdl.TOUCH_MOUSEID {
				c.tap(e.X, e.Y)
			}

		case *sdl.TouchFingerEvent:
			if e.Type == sdl.FINGERUP {
				w := internal.GetWindow()
				c.tap(int32(e.X*float32(w.GetWidth())), int32(e.Y*float32(w.GetHeight())))
			}

		default:
			input, ok := internal.MapInputEvent(event)
			if !ok {
				continue
			}
			if dir, isDir := c.directional.Handle(input.Button, input.Pressed, now); isDir {
				c.scroll(dir)
				continue
			}
			if !input.Pressed || input.Repeat {
				continue
			}
			switch input.Button {
			case constants.VirtualButtonA:
				if c.content.ActionLabel != "" {
					c.result = &InfoResult{Action: InfoActionConfirmed}
				}
			case constants.VirtualButtonB:
				c.back()
			}
		}
	}

	if reader := internal.GetTouchReader(); reader != nil {
		w := internal.GetWindow()
		for _, t := range reader.Drain() {
			c.tap(int32(t.X*float64(w.GetWidth())), int32(t.Y*float64(w.GetHeight())))
		}
	}

	c.scroll(c.directional.Update(now))
	return c.result == nil && !c.cancelled
}

func (c *infoScreenController) back() {
	if c.settings.DisableBack {
		return
	}
	c.result = &InfoResult{Action: InfoActionBack}
}

func (c *infoScreenController) scroll(dir internal.Direction) {
	switch dir {
	case internal.DirectionUp:
		if !c.list.move(-1) && c.list.focus < 0 {
			c.list.setFocus(c.list.first())
		}
	case internal.DirectionDown:
		if c.list.focus < 0 {
			c.list.setFocus(c.list.first())
			return
		}
		c.list.move(1)
	}
}

func (c *infoScreenController) tap(x, y int32) {
	p := sdl.Point{X: x, Y: y}
	switch {
	case !c.settings.DisableBack && p.InRect(&c.backRect):
		c.back()
	case c.content.ActionLabel != "" && p.InRect(&c.actionRect):
		c.result = &InfoResult{Action: InfoActionConfirmed}
	}
}

func (c *infoScreenController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	window.RenderBackground()

	titleX := screenMargin
	if !c.settings.DisableBack {
		internal.FillRoundedRect(renderer, c.backRect, c.backRect.W/2, theme.InactiveFillColor)
		if texture, err := internal.IconTexture(renderer, constants.IconBack, constants.IconSize, theme.TextColor); err == nil {
			cx, cy := rectCenter(c.backRect)
			dst := centeredRect(cx, cy, float64(constants.IconSize), float64(constants.IconSize))
			renderer.Copy(texture, nil, &dst)
		} else {
			internal.GetInternalLogger().Error("Failed to draw back icon", "error", err)
		}
		titleX += backButtonSize + 16
	}

	c.list.top = renderHeader(renderer, c.content.Title, c.content.Subtitle, titleX)
	c.list.ensureVisible()
	c.list.render(renderer, screenMargin, window.GetWidth()-2*screenMargin, c.list.focus >= 0)

	footer := append([]FooterHelpItem{}, c.settings.FooterHelpItems...)
	if c.content.ActionLabel != "" {
		internal.FillRoundedGradient(renderer, c.actionRect, c.actionRect.H/2, theme.ActiveGradient, true)
		_, th := internal.TextSize(fonts.Medium, c.content.ActionLabel)
		cx, _ := rectCenter(c.actionRect)
		internal.RenderText(renderer, fonts.Medium, c.content.ActionLabel, theme.TextColor,
			int32(cx), c.actionRect.Y+(c.actionRect.H-th)/2, constants.TextAlignCenter)
		footer = append(footer, FooterHelpItem{ButtonName: "A", HelpText: c.content.ActionLabel})
	}
	if !c.settings.DisableBack {
		footer = append(footer, FooterHelpItem{ButtonName: "B", HelpText: Localize("hint_back")})
	}
	renderFooter(renderer, footer, window.GetHeight()-16)

	window.Present()
}
