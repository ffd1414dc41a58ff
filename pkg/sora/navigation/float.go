package navigation

import "time"

// Idle float timing. Each half of the loop eases the bar between rest and
// FloatAmplitude pixels.
const (
	FloatHalfPeriod = 2000 * time.Millisecond
	FloatPeriod     = 2 * FloatHalfPeriod
	FloatAmplitude  = -8.0
)

// FloatPhase returns the idle bob phase in [0,1] for the time elapsed since the
// loop started. The phase rises to 1 over the first half of each period and
// falls back to 0 over the second.
func FloatPhase(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	p := elapsed % FloatPeriod
	if p < FloatHalfPeriod {
		return easeInOut(float64(p) / float64(FloatHalfPeriod))
	}
	return 1 - easeInOut(float64(p-FloatHalfPeriod)/float64(FloatHalfPeriod))
}

// FloatOffset returns the vertical displacement of the idle float in pixels.
func FloatOffset(elapsed time.Duration) float64 {
	return FloatPhase(elapsed) * FloatAmplitude
}

type idleFloat struct {
	started time.Time
	elapsed time.Duration
	running bool
}

func (f *idleFloat) start(now time.Time) {
	f.started = now
	f.elapsed = 0
	f.running = true
}

func (f *idleFloat) advance(now time.Time) {
	if !f.running {
		return
	}
	if e := now.Sub(f.started); e > f.elapsed {
		f.elapsed = e
	}
}

func (f *idleFloat) stop() {
	f.running = false
}

func (f *idleFloat) phase() float64 {
	return FloatPhase(f.elapsed)
}

func (f *idleFloat) cycles() int {
	return int(f.elapsed / FloatPeriod)
}
