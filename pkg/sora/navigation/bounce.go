package navigation

import "time"

// Container bounce targets. The lift channel runs from 0 to 1 and is mapped
// onto BounceLift pixels.
const (
	BounceScale = 1.1
	BounceLift  = -15.0
)

var (
	BounceGrowSpring   = SpringConfig{Tension: 200, Friction: 6}
	BounceShrinkSpring = SpringConfig{Tension: 300, Friction: 10}
	BounceRiseSpring   = SpringConfig{Tension: 300, Friction: 8}
	BounceFallSpring   = SpringConfig{Tension: 200, Friction: 10}
)

// bounce animates the whole bar on every press, regardless of which item was
// pressed. Scale and lift run in parallel.
type bounce struct {
	scale track
	lift  track
}

func newBounce() bounce {
	return bounce{scale: newTrack(1), lift: newTrack(0)}
}

func (b *bounce) trigger() {
	b.scale.run([]step{
		springTo(BounceScale, BounceGrowSpring),
		springTo(1, BounceShrinkSpring),
	})
	b.lift.run([]step{
		springTo(1, BounceRiseSpring),
		springTo(0, BounceFallSpring),
	})
}

func (b *bounce) advance(dt time.Duration) {
	b.scale.advance(dt)
	b.lift.advance(dt)
}

func (b *bounce) active() bool {
	return b.scale.active() || b.lift.active()
}

func (b *bounce) offset() float64 {
	return b.lift.value * BounceLift
}

func (b *bounce) reset() {
	b.scale.reset(1)
	b.lift.reset(0)
}
