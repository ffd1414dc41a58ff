package sora

import (
	"time"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// SelectionMessageSettings configures the selection message component.
type SelectionMessageSettings struct {
	// ConfirmButton confirms the focused option (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// DisableBackButton ignores B
	DisableBackButton bool
	// InitialSelection is the index of the initially focused option
	InitialSelection int
}

// SelectionOption is one choice in a SelectionMessage.
type SelectionOption struct {
	DisplayName string
	Value       any
}

const (
	dialogWidth  int32 = 560
	optionHeight int32 = 52
	optionGap    int32 = 12
)

var dialogPadding = internal.UniformPadding(28)

type selectionMessageController struct {
	message       string
	options       []SelectionOption
	selectedIndex int
	confirmButton constants.VirtualButton
	disableBack   bool
	inputDelay    time.Duration
	lastInputTime time.Time

	optionRects []sdl.Rect
	confirmed   bool
	cancelled   bool
}

// SelectionMessage shows a modal message with horizontally arranged options,
// such as a sign-out confirmation. Left and right move between options; taps
// pick one directly. Returns ErrCancelled if the user presses B.
func SelectionMessage(message string, options []SelectionOption, settings SelectionMessageSettings) (*SelectionMessageResult, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	c := &selectionMessageController{
		message:       message,
		options:       options,
		selectedIndex: settings.InitialSelection,
		confirmButton: settings.ConfirmButton,
		disableBack:   settings.DisableBackButton,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.selectedIndex < 0 || c.selectedIndex >= len(options) {
		c.selectedIndex = 0
	}

	for c.handleEvents() {
		c.render(renderer, window)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}
	return &SelectionMessageResult{
		SelectedIndex: c.selectedIndex,
		SelectedValue: c.options[c.selectedIndex].Value,
	}, nil
}

func (c *selectionMessageController) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT && e.Which != sdl.TOUCH_MOUSEID {
				if c.tap(e.X, e.Y) {
					return false
				}
			}

		case *sdl.TouchFingerEvent:
			if e.Type == sdl.FINGERUP {
				w := internal.GetWindow()
				if c.tap(int32(e.X*float32(w.GetWidth())), int32(e.Y*float32(w.GetHeight()))) {
					return false
				}
			}

		default:
			input, ok := internal.MapInputEvent(event)
			if !ok || !input.Pressed {
				continue
			}
			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			switch input.Button {
			case constants.VirtualButtonLeft:
				c.navigate(-1)
			case constants.VirtualButtonRight:
				c.navigate(1)
			case c.confirmButton, constants.VirtualButtonStart:
				c.confirmed = true
				return false
			case constants.VirtualButtonB:
				if !c.disableBack {
					c.cancelled = true
					return false
				}
			}
		}
	}

	if reader := internal.GetTouchReader(); reader != nil {
		w := internal.GetWindow()
		for _, t := range reader.Drain() {
			if c.tap(int32(t.X*float64(w.GetWidth())), int32(t.Y*float64(w.GetHeight()))) {
				return false
			}
		}
	}
	return true
}

func (c *selectionMessageController) navigate(delta int) {
	n := len(c.options)
	c.selectedIndex = (c.selectedIndex + delta + n) % n
}

// tap confirms the option under (x, y) and reports whether one was hit.
func (c *selectionMessageController) tap(x, y int32) bool {
	p := sdl.Point{X: x, Y: y}
	for i := range c.optionRects {
		if p.InRect(&c.optionRects[i]) {
			c.selectedIndex = i
			c.confirmed = true
			return true
		}
	}
	return false
}

// layoutOptions splits the dialog width evenly between the options.
func layoutOptions(x, y, width int32, count int) []sdl.Rect {
	rects := make([]sdl.Rect, count)
	if count == 0 {
		return rects
	}
	n := int32(count)
	w := (width - (n-1)*optionGap) / n
	for i := range rects {
		rects[i] = sdl.Rect{X: x + int32(i)*(w+optionGap), Y: y, W: w, H: optionHeight}
	}
	return rects
}

func (c *selectionMessageController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	window.RenderBackground()

	w, h := window.GetWidth(), window.GetHeight()
	dw := min(dialogWidth, w-2*screenMargin)
	textWidth := dw - dialogPadding.Horizontal()

	_, lineH := internal.TextSize(fonts.Medium, "Ag")
	lines := max(1, internal.WrappedLineCount(fonts.Medium, c.message, textWidth))
	dh := dialogPadding.Vertical() + lines*lineH + 24 + optionHeight

	dialog := sdl.Rect{X: (w - dw) / 2, Y: (h - dh) / 2, W: dw, H: dh}
	internal.FillRoundedGradient(renderer, dialog, 24, theme.BarGradient, false)
	internal.StrokeRoundedRect(renderer, dialog, 24, 1, theme.BarBorderColor)

	body := dialogPadding.Inset(dialog)
	internal.RenderMultilineText(renderer, fonts.Medium, c.message, theme.TextColor,
		body.X, body.Y, body.W, constants.TextAlignLeft)

	c.optionRects = layoutOptions(body.X, body.Y+body.H-optionHeight, body.W, len(c.options))
	for i, opt := range c.options {
		rect := c.optionRects[i]
		if i == c.selectedIndex {
			internal.FillRoundedGradient(renderer, rect, rect.H/2, theme.ActiveGradient, true)
		} else {
			internal.FillRoundedRect(renderer, rect, rect.H/2, theme.InactiveFillColor)
		}
		_, th := internal.TextSize(fonts.Medium, opt.DisplayName)
		cx, _ := rectCenter(rect)
		internal.RenderText(renderer, fonts.Medium, opt.DisplayName, theme.TextColor, int32(cx), rect.Y+(rect.H-th)/2, constants.TextAlignCenter)
	}

	footer := []FooterHelpItem{{ButtonName: "A", HelpText: Localize("hint_confirm")}}
	if !c.disableBack {
		footer = append(footer, FooterHelpItem{ButtonName: "B", HelpText: Localize("hint_cancel")})
	}
	renderFooter(renderer, footer, h-16)

	window.Present()
}
