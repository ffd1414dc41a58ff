package internal

import (
	"time"

	"github.com/soracell/sora/pkg/sora/constants"
)

// Direction is a D-pad direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Default repeat timing for held directions.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 80 * time.Millisecond
)

// DirectionalInput turns held D-pad buttons into repeated steps. The first
// step fires on press, the next after the repeat delay, then every interval.
type DirectionalInput struct {
	held       Direction
	nextRepeat time.Time
	delay      time.Duration
	interval   time.Duration
}

func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(DefaultRepeatDelay, DefaultRepeatInterval)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{delay: delay, interval: interval}
}

// directionFor maps a virtual button to a direction.
func directionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	}
	return DirectionNone
}

// Handle records a press or release at now. It reports whether the button
// was directional, and the step to apply immediately (DirectionNone if none).
func (d *DirectionalInput) Handle(button constants.VirtualButton, pressed bool, now time.Time) (Direction, bool) {
	dir := directionFor(button)
	if dir == DirectionNone {
		return DirectionNone, false
	}

	if !pressed {
		if d.held == dir {
			d.held = DirectionNone
		}
		return DirectionNone, true
	}

	if d.held == dir {
		// key repeat from the OS; our own timer drives repeats
		return DirectionNone, true
	}
	d.held = dir
	d.nextRepeat = now.Add(d.delay)
	return dir, true
}

// Update returns the held direction when a repeat is due at now.
func (d *DirectionalInput) Update(now time.Time) Direction {
	if d.held == DirectionNone || now.Before(d.nextRepeat) {
		return DirectionNone
	}
	d.nextRepeat = now.Add(d.interval)
	return d.held
}

func (d *DirectionalInput) Held() Direction {
	return d.held
}

func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
