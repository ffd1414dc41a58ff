package navigation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// frameStep is the fixed integration step for springs. Elapsed time is
// accumulated and consumed in whole steps so results do not depend on the
// host's frame rate.
const frameStep = time.Second / 60

// restThreshold is the displacement and speed below which a spring is
// considered settled and snapped onto its target.
const restThreshold = 0.001

// SpringConfig describes a spring in origami tension/friction terms.
type SpringConfig struct {
	Tension  float64
	Friction float64
}

// Stiffness converts tension to a spring constant for a unit mass.
func (c SpringConfig) Stiffness() float64 {
	return (c.Tension-30)*3.62 + 194
}

// Damping converts friction to a damping coefficient for a unit mass.
func (c SpringConfig) Damping() float64 {
	return (c.Friction-8)*3 + 25
}

func (c SpringConfig) solver() harmonica.Spring {
	omega := math.Sqrt(c.Stiffness())
	zeta := c.Damping() / (2 * omega)
	return harmonica.NewSpring(harmonica.FPS(60), omega, zeta)
}

type stepKind int

const (
	stepTiming stepKind = iota
	stepSpring
)

// step is one segment of an animation sequence.
type step struct {
	kind     stepKind
	to       float64
	duration time.Duration
	spring   SpringConfig
}

func timingTo(to float64, d time.Duration) step {
	return step{kind: stepTiming, to: to, duration: d}
}

func springTo(to float64, cfg SpringConfig) step {
	return step{kind: stepSpring, to: to, spring: cfg}
}

// track is a single animated value running a sequence of steps. Leftover time
// from a finished step carries into the next one.
type track struct {
	value    float64
	velocity float64

	steps   []step
	index   int // -1 when idle
	from    float64
	elapsed time.Duration
	solver  harmonica.Spring
}

func newTrack(value float64) track {
	return track{value: value, index: -1}
}

// run starts a new sequence from the current value. A spring step that
// interrupts a running spring keeps its velocity; timing steps start at rest.
func (t *track) run(steps []step) {
	t.steps = steps
	t.begin(0)
}

func (t *track) begin(i int) {
	if i >= len(t.steps) {
		t.index = -1
		t.steps = nil
		t.elapsed = 0
		return
	}
	s := t.steps[i]
	t.index = i
	t.from = t.value
	t.elapsed = 0
	switch s.kind {
	case stepTiming:
		t.velocity = 0
	case stepSpring:
		t.solver = s.spring.solver()
	}
}

func (t *track) active() bool {
	return t.index >= 0
}

// reset stops the track and places it at value.
func (t *track) reset(value float64) {
	t.value = value
	t.velocity = 0
	t.steps = nil
	t.index = -1
	t.elapsed = 0
}

// advance moves the sequence forward by dt. It reports true when the sequence
// finished during this call.
func (t *track) advance(dt time.Duration) bool {
	if !t.active() {
		return false
	}
	for t.active() {
		rest, done := t.advanceStep(dt)
		if !done {
			return false
		}
		t.begin(t.index + 1)
		dt = rest
	}
	return true
}

func (t *track) advanceStep(dt time.Duration) (time.Duration, bool) {
	s := t.steps[t.index]
	t.elapsed += dt

	if s.kind == stepTiming {
		if t.elapsed >= s.duration {
			t.value = s.to
			return t.elapsed - s.duration, true
		}
		progress := float64(t.elapsed) / float64(s.duration)
		t.value = t.from + (s.to-t.from)*easeInOut(progress)
		return 0, false
	}

	if t.settled(s.to) {
		t.value, t.velocity = s.to, 0
		return t.elapsed, true
	}
	for t.elapsed >= frameStep {
		t.value, t.velocity = t.solver.Update(t.value, t.velocity, s.to)
		t.elapsed -= frameStep
		if t.settled(s.to) {
			t.value, t.velocity = s.to, 0
			return t.elapsed, true
		}
	}
	return 0, false
}

func (t *track) settled(target float64) bool {
	return math.Abs(t.velocity) <= restThreshold && math.Abs(target-t.value) <= restThreshold
}
