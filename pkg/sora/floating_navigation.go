package sora

import (
	"time"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/soracell/sora/pkg/sora/navigation"
	"github.com/veandco/go-sdl2/sdl"
)

// TabContent is the static content of a tab screen.
type TabContent struct {
	Title    string
	Subtitle string
	Rows     []ContentRow
}

// FloatingNavigationSettings configures a tab screen.
type FloatingNavigationSettings struct {
	InitialRow      int              // Row focused on entry (default: first selectable)
	FocusBar        bool             // Start with focus on the bar instead of the rows
	FooterHelpItems []FooterHelpItem // Extra hints; the bar adds its own
}

type focusZone int

const (
	focusRows focusZone = iota
	focusBar
)

type floatingNavigationController struct {
	current  navigation.RouteID
	bar      *TabBar
	layout   barLayout
	list     rowList
	content  TabContent
	settings FloatingNavigationSettings

	zone        focusZone
	barFocus    int
	directional internal.DirectionalInput

	now       time.Time // frame time, stamped on presses
	result    *FloatingNavigationResult
	cancelled bool
}

// FloatingNavigation shows a tab screen with the floating navigation bar.
//
// Taps on a bar button, or A with a bar button focused, press it. The
// screen returns once the bar's delayed navigation fires, with the target
// route. Activating a row returns TabActionSelected instead. B or closing
// the window returns ErrCancelled.
func FloatingNavigation(current navigation.RouteID, content TabContent, bar *TabBar, settings FloatingNavigationSettings) (*FloatingNavigationResult, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}

	window := internal.GetWindow()
	renderer := window.Renderer
	items := bar.Controller().Items()

	c := &floatingNavigationController{
		current:     current,
		bar:         bar,
		layout:      layoutBar(window.GetWidth(), window.GetHeight(), len(items)),
		list:        newRowList(content.Rows, true),
		content:     content,
		settings:    settings,
		barFocus:    activeIndex(items, current),
		directional: internal.NewDirectionalInput(),
	}
	c.list.bottom = c.layout.bar.Y - rowGap

	// a navigation fired while no tab screen was showing is stale
	bar.takeNavigation()

	c.list.setFocus(settings.InitialRow)
	if c.list.focus < 0 {
		c.list.setFocus(c.list.first())
	}
	if settings.FocusBar || c.list.focus < 0 {
		c.zone = focusBar
	}

	logger := internal.GetInternalLogger()
	logger.Debug("Tab screen shown", "route", current, "rows", len(content.Rows))

	for {
		now := time.Now()
		c.now = now
		bar.Controller().Update(now)
		if !c.handleEvents(now) {
			break
		}
		c.handleTouchPanel(now)

		if route, ok := bar.takeNavigation(); ok {
			c.result = &FloatingNavigationResult{Action: TabActionNavigated, Route: route}
		}
		if c.result != nil {
			break
		}

		c.render(renderer, window)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}
	logger.Debug("Tab screen left", "route", current, "action", c.result.Action.String(), "target", c.result.Route)
	return c.result, nil
}

// activeIndex returns the item whose route is current, or 0.
func activeIndex(items []navigation.Item, current navigation.RouteID) int {
	for i, item := range items {
		if item.Route == current {
			return i
		}
	}
	return 0
}

func (c *floatingNavigationController) handleEvents(now time.Time) bool {
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
				c.step(dir)
				continue
			}
			if input.Pressed && !input.Repeat && !c.button(input.Button) {
				return false
			}
		}
	}

	c.step(c.directional.Update(now))
	return c.result == nil
}

func (c *floatingNavigationController) handleTouchPanel(now time.Time) {
	reader := internal.GetTouchReader()
	if reader == nil {
		return
	}
	w := internal.GetWindow()
	for _, t := range reader.Drain() {
		c.tap(int32(t.X*float64(w.GetWidth())), int32(t.Y*float64(w.GetHeight())))
	}
}

// button handles a non-directional press and reports whether the screen
// keeps running.
func (c *floatingNavigationController) button(b constants.VirtualButton) bool {
	count := len(c.layout.buttons)

	switch b {
	case constants.VirtualButtonA:
		if c.zone == focusBar {
			c.bar.Controller().Press(c.barFocus, c.now)
			return true
		}
		if c.list.focus >= 0 {
			c.selectRow(c.list.focus)
			return false
		}

	case constants.VirtualButtonB:
		c.cancelled = true
		return false

	case constants.VirtualButtonL1:
		c.barFocus = (c.barFocus - 1 + count) % count
		c.zone = focusBar
		c.bar.Controller().Press(c.barFocus, c.now)

	case constants.VirtualButtonR1:
		c.barFocus = (c.barFocus + 1) % count
		c.zone = focusBar
		c.bar.Controller().Press(c.barFocus, c.now)
	}
	return true
}

func (c *floatingNavigationController) step(dir internal.Direction) {
	count := len(c.layout.buttons)

	switch c.zone {
	case focusRows:
		switch dir {
		case internal.DirectionUp:
			c.list.move(-1)
		case internal.DirectionDown:
			if !c.list.move(1) {
				c.zone = focusBar
			}
		}

	case focusBar:
		switch dir {
		case internal.DirectionLeft:
			c.barFocus = (c.barFocus - 1 + count) % count
		case internal.DirectionRight:
			c.barFocus = (c.barFocus + 1) % count
		case internal.DirectionUp:
			if last := c.list.last(); last >= 0 {
				if c.list.focus < 0 {
					c.list.setFocus(last)
				}
				c.zone = focusRows
			}
		}
	}
}

func (c *floatingNavigationController) tap(x, y int32) {
	frame := c.bar.Controller().Render(c.current)

	if i := c.layout.hitTest(frame.Bar, x, y); i >= 0 {
		c.barFocus = i
		c.zone = focusBar
		c.bar.Controller().Press(i, c.now)
		return
	}
	if c.layout.contains(frame.Bar, x, y) {
		return
	}

	if row := c.list.rowAt(y); row >= 0 && c.list.canFocus(row) {
		c.list.setFocus(row)
		c.selectRow(row)
	}
}

func (c *floatingNavigationController) selectRow(row int) {
	c.result = &FloatingNavigationResult{
		Action: TabActionSelected,
		Row:    row,
		Value:  c.list.rows[row].Data,
	}
}

func (c *floatingNavigationController) render(renderer *sdl.Renderer, window *internal.Window) {
	window.RenderBackground()

	c.list.top = renderHeader(renderer, c.content.Title, c.content.Subtitle, screenMargin)
	c.list.ensureVisible()
	c.list.render(renderer, screenMargin, window.GetWidth()-2*screenMargin, c.zone == focusRows)

	frame := c.bar.Controller().Render(c.current)
	c.renderBar(renderer, frame)

	footer := append([]FooterHelpItem{}, c.settings.FooterHelpItems...)
	if c.zone == focusBar {
		footer = append(footer, FooterHelpItem{ButtonName: "A", HelpText: Localize(frame.Buttons[c.barFocus].Item.Label)})
	} else if c.list.focus >= 0 {
		footer = append(footer, FooterHelpItem{ButtonName: "A", HelpText: Localize("hint_select")})
	}
	renderFooter(renderer, footer, c.layout.bar.Y-constants.BarBottomMargin/2)

	window.Present()
}

func (c *floatingNavigationController) renderBar(renderer *sdl.Renderer, frame navigation.Frame) {
	theme := internal.GetTheme()
	logger := internal.GetInternalLogger()

	barRect := c.layout.barRect(frame.Bar)
	radius := int32(float64(constants.BarCornerRadius) * frame.Bar.Scale)
	internal.FillRoundedGradient(renderer, barRect, radius, theme.BarGradient, false)
	internal.StrokeRoundedRect(renderer, barRect, radius, 1, theme.BarBorderColor)

	for _, b := range frame.Buttons {
		rect := c.layout.buttonRect(b.Index, frame.Bar, b.Scale)
		scale := frame.Bar.Scale * b.Scale

		iconColor := theme.InactiveIconColor
		if b.Active {
			internal.FillRoundedGradient(renderer, rect, rect.W/2, theme.ActiveGradient, false)
			iconColor = theme.ActiveIconColor

			iw := float64(constants.IndicatorWidth) * scale
			ih := float64(constants.IndicatorHeight) * scale
			cx, _ := rectCenter(rect)
			bottom := float64(rect.Y+rect.H) + float64(constants.IndicatorOffset)*scale
			indicator := centeredRect(cx, bottom-ih/2, iw, ih)
			internal.FillRoundedGradient(renderer, indicator, 2, theme.ActiveGradient, true)
		} else {
			internal.FillRoundedRect(renderer, rect, rect.W/2, theme.InactiveFillColor)
		}

		if c.zone == focusBar && b.Index == c.barFocus {
			pad := focusRingPad + constants.FocusRingWidth
			ring := sdl.Rect{X: rect.X - pad, Y: rect.Y - pad, W: rect.W + 2*pad, H: rect.H + 2*pad}
			internal.StrokeRoundedRect(renderer, ring, ring.W/2, constants.FocusRingWidth, theme.FocusColor)
		}

		texture, err := internal.IconTexture(renderer, string(b.Item.Icon), constants.IconSize, iconColor)
		if err != nil {
			logger.Error("Failed to draw navigation icon", "icon", b.Item.Icon, "error", err)
			continue
		}
		cx, cy := rectCenter(rect)
		size := float64(constants.IconSize) * scale
		dst := centeredRect(cx, cy, size, size)
		renderer.Copy(texture, nil, &dst)
	}
}
