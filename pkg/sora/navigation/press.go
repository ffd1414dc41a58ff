package navigation

import "time"

// PressState is the phase of an item's press animation.
type PressState int

const (
	PressIdle      PressState = iota // Resting at scale 1.0
	PressPressing                    // Shrinking towards PressedScale
	PressOvershoot                   // Springing past rest towards OvershootScale
	PressSettling                    // Springing back to 1.0
)

func (s PressState) String() string {
	switch s {
	case PressIdle:
		return "Idle"
	case PressPressing:
		return "Pressing"
	case PressOvershoot:
		return "Overshoot"
	case PressSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// Press animation targets.
const (
	RestScale      = 1.0
	PressedScale   = 0.6
	OvershootScale = 1.2

	PressDuration = 80 * time.Millisecond
)

var (
	OvershootSpring = SpringConfig{Tension: 400, Friction: 6}
	SettleSpring    = SpringConfig{Tension: 300, Friction: 8}
)

func pressSteps() []step {
	return []step{
		timingTo(PressedScale, PressDuration),
		springTo(OvershootScale, OvershootSpring),
		springTo(RestScale, SettleSpring),
	}
}

// pressAnimation is the per-item state machine. The step index of its scale
// track is the state: each step maps onto one PressState.
type pressAnimation struct {
	scale track
}

func newPressAnimation() pressAnimation {
	return pressAnimation{scale: newTrack(RestScale)}
}

func (p *pressAnimation) press() {
	p.scale.run(pressSteps())
}

func (p *pressAnimation) advance(dt time.Duration) bool {
	return p.scale.advance(dt)
}

func (p *pressAnimation) state() PressState {
	switch p.scale.index {
	case 0:
		return PressPressing
	case 1:
		return PressOvershoot
	case 2:
		return PressSettling
	default:
		return PressIdle
	}
}
