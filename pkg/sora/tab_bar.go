package sora

import (
	"math"
	"time"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/navigation"
	"github.com/veandco/go-sdl2/sdl"
)

// TabBar owns the navigation controller shared by every tab screen, so the
// idle float and running animations carry over when the tab changes.
type TabBar struct {
	ctl      *navigation.Controller
	target   navigation.RouteID
	hasFired bool
}

// NewTabBar validates items and starts the bar's clock.
func NewTabBar(items []navigation.Item, opts navigation.Options) (*TabBar, error) {
	bar := &TabBar{}
	ctl, err := navigation.NewController(items, navigation.NavigatorFunc(bar.navigate), opts)
	if err != nil {
		return nil, err
	}
	bar.ctl = ctl
	ctl.Start(time.Now())
	return bar, nil
}

func (b *TabBar) navigate(route navigation.RouteID) {
	b.target = route
	b.hasFired = true
}

// takeNavigation returns a navigation fired since the last call.
func (b *TabBar) takeNavigation() (navigation.RouteID, bool) {
	if !b.hasFired {
		return "", false
	}
	route := b.target
	b.target, b.hasFired = "", false
	return route, true
}

// Controller exposes the underlying state machine.
func (b *TabBar) Controller() *navigation.Controller {
	return b.ctl
}

// Close stops the bar. Pending navigations are dropped.
func (b *TabBar) Close() {
	b.ctl.Close()
}

// barLayout is the untransformed geometry of the bar for a window size.
type barLayout struct {
	bar     sdl.Rect
	buttons []sdl.Rect
}

// layoutBar places the bar along the bottom edge and spreads count buttons
// with equal space around each.
func layoutBar(width, height int32, count int) barLayout {
	barHeight := constants.ButtonSize + 2*constants.BarPaddingVertical
	bar := sdl.Rect{
		X: constants.BarSideMargin,
		Y: height - constants.BarBottomMargin - barHeight,
		W: width - 2*constants.BarSideMargin,
		H: barHeight,
	}

	l := barLayout{bar: bar, buttons: make([]sdl.Rect, count)}
	if count == 0 {
		return l
	}

	inner := bar.W - 2*constants.BarPaddingSide
	for i := range l.buttons {
		// slot centers avoid accumulating integer rounding
		center := bar.X + constants.BarPaddingSide + int32((float64(2*i+1)*float64(inner))/float64(2*count))
		l.buttons[i] = sdl.Rect{
			X: center - constants.ButtonSize/2,
			Y: bar.Y + constants.BarPaddingVertical,
			W: constants.ButtonSize,
			H: constants.ButtonSize,
		}
	}
	return l
}

func rectCenter(r sdl.Rect) (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// centeredRect builds a rect of the given size around (cx, cy).
func centeredRect(cx, cy, w, h float64) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(cx - w/2)),
		Y: int32(math.Round(cy - h/2)),
		W: int32(math.Round(w)),
		H: int32(math.Round(h)),
	}
}

// barRect applies the bar transform: scale about the bar center, then the
// vertical offset.
func (l barLayout) barRect(t navigation.BarTransform) sdl.Rect {
	cx, cy := rectCenter(l.bar)
	return centeredRect(cx, cy+t.OffsetY, float64(l.bar.W)*t.Scale, float64(l.bar.H)*t.Scale)
}

// buttonRect returns button i under the bar transform and its own scale.
func (l barLayout) buttonRect(i int, t navigation.BarTransform, scale float64) sdl.Rect {
	bx, by := rectCenter(l.bar)
	cx, cy := rectCenter(l.buttons[i])
	cx = bx + (cx-bx)*t.Scale
	cy = by + (cy-by)*t.Scale + t.OffsetY
	size := float64(constants.ButtonSize) * t.Scale * scale
	return centeredRect(cx, cy, size, size)
}

// hitTest returns the button under (x, y), or -1. Buttons are round and
// are hit-tested at rest scale so a shrinking button stays easy to tap.
func (l barLayout) hitTest(t navigation.BarTransform, x, y int32) int {
	for i := range l.buttons {
		r := l.buttonRect(i, t, 1)
		cx, cy := rectCenter(r)
		dx, dy := float64(x)-cx, float64(y)-cy
		radius := float64(r.W) / 2
		if dx*dx+dy*dy <= radius*radius {
			return i
		}
	}
	return -1
}

// contains reports whether (x, y) falls on the bar.
func (l barLayout) contains(t navigation.BarTransform, x, y int32) bool {
	p := sdl.Point{X: x, Y: y}
	r := l.barRect(t)
	return p.InRect(&r)
}
