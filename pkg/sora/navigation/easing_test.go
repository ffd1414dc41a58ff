package navigation

import (
	"math"
	"testing"
)

func TestEaseInOut(t *testing.T) {
	if easeInOut(0) != 0 || easeInOut(1) != 1 {
		t.Fatalf("endpoints: got %v and %v", easeInOut(0), easeInOut(1))
	}
	if got := easeInOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("midpoint: got %v", got)
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		y := easeInOut(x)
		if y < prev {
			t.Fatalf("not monotonic at %v: %v < %v", x, y, prev)
		}
		if mirror := 1 - easeInOut(1-x); math.Abs(mirror-y) > 1e-6 {
			t.Fatalf("not symmetric at %v: %v vs %v", x, y, mirror)
		}
		prev = y
	}

	// The curve starts slowly: a quarter of the way in, well under a quarter done.
	if y := easeInOut(0.25); y >= 0.25 {
		t.Errorf("expected slow start, easeInOut(0.25) = %v", y)
	}
}

func TestCubicBezierLinear(t *testing.T) {
	linear := cubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.3, 0.5, 0.77, 0.9} {
		if got := linear(x); math.Abs(got-x) > 1e-5 {
			t.Errorf("linear(%v) = %v", x, got)
		}
	}
}

func TestSpringConfigConversion(t *testing.T) {
	tests := []struct {
		cfg       SpringConfig
		stiffness float64
		damping   float64
	}{
		{SpringConfig{Tension: 40, Friction: 7}, 230.2, 22},
		{OvershootSpring, 1533.4, 19},
		{SettleSpring, 1171.4, 25},
	}
	for _, tt := range tests {
		if got := tt.cfg.Stiffness(); math.Abs(got-tt.stiffness) > 1e-9 {
			t.Errorf("%+v stiffness = %v, want %v", tt.cfg, got, tt.stiffness)
		}
		if got := tt.cfg.Damping(); math.Abs(got-tt.damping) > 1e-9 {
			t.Errorf("%+v damping = %v, want %v", tt.cfg, got, tt.damping)
		}
	}
}

func TestTrackCarriesLeftoverTime(t *testing.T) {
	tr := newTrack(0)
	tr.run([]step{
		timingTo(1, 100*frame),
		timingTo(0, 100*frame),
	})

	if done := tr.advance(150 * frame); done {
		t.Fatal("sequence should still be running")
	}
	if tr.index != 1 {
		t.Fatalf("expected second step, got %d", tr.index)
	}
	if got := tr.value; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected halfway back down, got %v", got)
	}
	if done := tr.advance(50 * frame); !done {
		t.Error("sequence should finish exactly at the end of the second step")
	}
	if tr.value != 0 || tr.active() {
		t.Errorf("expected idle at 0, got %v (active=%v)", tr.value, tr.active())
	}
}

func TestSpringStepSnapsToTarget(t *testing.T) {
	tr := newTrack(0)
	tr.run([]step{springTo(1, SpringConfig{Tension: 40, Friction: 7})})

	for i := 0; i < 60*10 && tr.active(); i++ {
		tr.advance(frameStep)
	}
	if tr.active() {
		t.Fatal("spring did not come to rest within 10s")
	}
	if tr.value != 1 || tr.velocity != 0 {
		t.Errorf("expected exact rest at 1, got value=%v velocity=%v", tr.value, tr.velocity)
	}
}
