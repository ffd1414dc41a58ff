package navigation

import (
	"fmt"
	"log/slog"
	"time"
)

// RouteID identifies a navigable destination. It is opaque to the controller
// and only ever compared for equality.
type RouteID string

// IconID is a symbolic icon reference resolved by the renderer.
type IconID string

// Item is one destination in the bar. Items are fixed for the controller's
// lifetime and displayed left to right in the order given.
type Item struct {
	Label string  // Display label or message ID, never used for matching
	Icon  IconID  // Icon drawn inside the button
	Route RouteID // Route the item navigates to and is matched against
}

// Navigator performs the navigation effect. It may cause the host to tear the
// controller down.
type Navigator interface {
	Navigate(route RouteID)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route RouteID)

func (f NavigatorFunc) Navigate(route RouteID) { f(route) }

// Haptics plays a vibration pattern of alternating wait and vibrate durations.
// Implementations must not block; errors are logged and otherwise ignored.
type Haptics interface {
	Vibrate(pattern []time.Duration) error
}

// Defaults used when Options leaves a field unset.
const DefaultNavigateDelay = 100 * time.Millisecond

var DefaultHapticPattern = []time.Duration{0, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}

// Options configures a Controller.
type Options struct {
	NavigateDelay time.Duration   // Delay between a press and its navigation (default: 100ms)
	HapticPattern []time.Duration // Pattern passed to Haptics on every press (default: 0,50,50,50ms)
	Haptics       Haptics         // Optional haptic feedback
	Logger        *slog.Logger    // Optional logger (default: discard)
}

// Button describes one item as it should be drawn for the current frame.
type Button struct {
	Index   int
	Item    Item
	Active  bool       // Item route equals the current route
	Pressed bool       // Item is the most recent press and its animation is still running
	State   PressState // Phase of the press animation
	Scale   float64    // Animated scale, 1.0 at rest
}

// BarTransform is the transform applied to the whole bar.
type BarTransform struct {
	Scale        float64 // Bounce scale, 1.0 at rest
	FloatOffset  float64 // Idle float displacement in pixels (<= 0 is up)
	BounceOffset float64 // Bounce lift displacement in pixels
	OffsetY      float64 // FloatOffset + BounceOffset
}

// Frame is everything a renderer needs to draw the bar.
type Frame struct {
	Bar     BarTransform
	Buttons []Button
}

type pendingNavigation struct {
	route RouteID
	due   time.Time
}

// Controller is the floating navigation state machine. It is not safe for
// concurrent use; drive it from the host's frame loop.
type Controller struct {
	items     []Item
	navigator Navigator
	haptics   Haptics
	pattern   []time.Duration
	delay     time.Duration
	logger    *slog.Logger

	presses []pressAnimation
	pressed int
	bounce  bounce
	float   idleFloat

	pending *pendingNavigation
	now     time.Time
	started bool
	closed  bool
}

// NewController validates items and returns a controller that is ready to Start.
func NewController(items []Item, navigator Navigator, opts Options) (*Controller, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if navigator == nil {
		return nil, ErrNilNavigator
	}

	seen := make(map[RouteID]int, len(items))
	for i, item := range items {
		if item.Route == "" {
			return nil, fmt.Errorf("%w: item %d (%q)", ErrEmptyRoute, i, item.Label)
		}
		if other, ok := seen[item.Route]; ok {
			return nil, fmt.Errorf("%w: %q used by items %d and %d", ErrDuplicateRoute, item.Route, other, i)
		}
		seen[item.Route] = i
	}

	c := &Controller{
		items:     append([]Item(nil), items...),
		navigator: navigator,
		haptics:   opts.Haptics,
		pattern:   opts.HapticPattern,
		delay:     opts.NavigateDelay,
		logger:    opts.Logger,
		presses:   make([]pressAnimation, len(items)),
		pressed:   -1,
		bounce:    newBounce(),
	}
	if c.delay <= 0 {
		c.delay = DefaultNavigateDelay
	}
	if c.pattern == nil {
		c.pattern = DefaultHapticPattern
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	for i := range c.presses {
		c.presses[i] = newPressAnimation()
	}

	return c, nil
}

// Items returns a copy of the configured items.
func (c *Controller) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Start mounts the controller at now and starts the idle float.
func (c *Controller) Start(now time.Time) {
	if c.closed || c.started {
		return
	}
	c.started = true
	c.now = now
	c.float.start(now)
}

// Press handles a tap on the item at index made at now. The controller is
// first brought up to now, so the navigation delay and the press sequence
// both start from the tap even when Update has not run for a while. It
// panics if index is out of range, since that can only come from a caller
// or configuration bug.
func (c *Controller) Press(index int, now time.Time) {
	if index < 0 || index >= len(c.items) {
		panic(fmt.Sprintf("navigation: press index %d out of range [0,%d)", index, len(c.items)))
	}
	if c.closed || !c.started {
		c.logger.Warn("press ignored, controller not running", "index", index)
		return
	}
	c.advance(now)

	item := c.items[index]
	c.pressed = index

	c.vibrate()
	c.presses[index].press()
	c.bounce.trigger()

	if c.pending != nil {
		c.logger.Debug("replacing pending navigation", "from", c.pending.route, "to", item.Route)
	}
	c.pending = &pendingNavigation{route: item.Route, due: c.now.Add(c.delay)}
}

func (c *Controller) vibrate() {
	if c.haptics == nil {
		return
	}
	if err := c.haptics.Vibrate(c.pattern); err != nil {
		c.logger.Debug("haptic feedback unavailable", "error", err)
	}
}

// Update advances every animation to now and fires the pending navigation
// once it is due. Times earlier than the last update are ignored.
func (c *Controller) Update(now time.Time) {
	if c.closed || !c.started {
		return
	}
	c.advance(now)
}

// advance is Update without the running check.
func (c *Controller) advance(now time.Time) {
	var dt time.Duration
	if now.After(c.now) {
		dt = now.Sub(c.now)
		c.now = now
	}

	for i := range c.presses {
		if c.presses[i].advance(dt) && c.pressed == i {
			c.pressed = -1
		}
	}
	c.bounce.advance(dt)
	c.float.advance(c.now)

	if c.pending != nil && !c.now.Before(c.pending.due) {
		route := c.pending.route
		c.pending = nil
		c.logger.Debug("navigating", "route", route)
		c.navigator.Navigate(route)
	}
}

// Render describes the bar for currentRoute. Exactly the items whose route
// equals currentRoute are active.
func (c *Controller) Render(currentRoute RouteID) Frame {
	bob := c.float.phase() * FloatAmplitude
	lift := c.bounce.offset()

	frame := Frame{
		Bar: BarTransform{
			Scale:        c.bounce.scale.value,
			FloatOffset:  bob,
			BounceOffset: lift,
			OffsetY:      bob + lift,
		},
		Buttons: make([]Button, len(c.items)),
	}

	for i, item := range c.items {
		frame.Buttons[i] = Button{
			Index:   i,
			Item:    item,
			Active:  item.Route == currentRoute,
			Pressed: i == c.pressed,
			State:   c.presses[i].state(),
			Scale:   c.presses[i].scale.value,
		}
	}

	return frame
}

// Close tears the controller down. The idle float stops, a pending navigation
// is dropped, and all press animations return to rest.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.float.stop()
	if c.pending != nil {
		c.logger.Debug("dropping pending navigation on close", "route", c.pending.route)
		c.pending = nil
	}
	for i := range c.presses {
		c.presses[i].scale.reset(RestScale)
	}
	c.pressed = -1
	c.bounce.reset()
}

// State returns the press state of the item at index.
func (c *Controller) State(index int) PressState {
	return c.presses[index].state()
}

// Scale returns the animated scale of the item at index.
func (c *Controller) Scale(index int) float64 {
	return c.presses[index].scale.value
}

// PressedIndex returns the most recently pressed item while its animation is
// running, or -1.
func (c *Controller) PressedIndex() int {
	return c.pressed
}

// Animating reports whether any press or bounce animation is in flight.
func (c *Controller) Animating() bool {
	for i := range c.presses {
		if c.presses[i].scale.active() {
			return true
		}
	}
	return c.bounce.active()
}

// FloatPhase returns the current idle float phase in [0,1].
func (c *Controller) FloatPhase() float64 {
	return c.float.phase()
}

// FloatCycles returns the number of completed idle float loops.
func (c *Controller) FloatCycles() int {
	return c.float.cycles()
}

// Running reports whether the controller has started and not been closed.
func (c *Controller) Running() bool {
	return c.started && !c.closed
}

// PendingRoute returns the route of the scheduled navigation, if any.
func (c *Controller) PendingRoute() (RouteID, bool) {
	if c.pending == nil {
		return "", false
	}
	return c.pending.route, true
}
