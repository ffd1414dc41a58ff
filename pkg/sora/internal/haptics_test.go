package internal

import (
	"errors"
	"testing"
	"time"
)

type rumbleCall struct {
	strength uint16
	d        time.Duration
}

func newTestHaptics(calls *[]rumbleCall, slept *[]time.Duration) *RumbleHaptics {
	h := NewRumbleHaptics(1000)
	h.rumble = func(low, high uint16, d time.Duration) error {
		*calls = append(*calls, rumbleCall{low, d})
		return nil
	}
	h.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return h
}

func TestRumblePatternAlternatesOffAndOn(t *testing.T) {
	var calls []rumbleCall
	var slept []time.Duration
	h := newTestHaptics(&calls, &slept)

	pattern := []time.Duration{0, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}
	gen := h.generation.Inc()
	h.play(gen, pattern, h.rumble)

	want := []rumbleCall{{1000, 50 * time.Millisecond}, {1000, 50 * time.Millisecond}}
	if len(calls) != len(want) {
		t.Fatalf("rumble calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
	if len(slept) != len(pattern) {
		t.Errorf("slept %d times, want %d", len(slept), len(pattern))
	}
}

func TestRumbleCancelledBySupersedingPattern(t *testing.T) {
	var calls []rumbleCall
	var slept []time.Duration
	h := newTestHaptics(&calls, &slept)

	gen := h.generation.Inc()
	h.sleep = func(time.Duration) { h.generation.Inc() }
	h.play(gen, []time.Duration{0, 50 * time.Millisecond, 50 * time.Millisecond}, h.rumble)

	if len(calls) != 0 {
		t.Errorf("superseded pattern kept rumbling: %v", calls)
	}
}

func TestRumbleStopsOnError(t *testing.T) {
	h := NewRumbleHaptics(1)
	h.sleep = func(time.Duration) {}
	attempts := 0
	rumble := func(uint16, uint16, time.Duration) error {
		attempts++
		return errors.New("no motor")
	}
	h.play(h.generation.Inc(), []time.Duration{0, time.Millisecond, 0, time.Millisecond}, rumble)
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestVibrateWithoutControllerIsUnavailable(t *testing.T) {
	h := NewRumbleHaptics(1)
	if err := h.Vibrate([]time.Duration{0, time.Millisecond}); !errors.Is(err, ErrHapticsUnavailable) {
		t.Errorf("expected ErrHapticsUnavailable, got %v", err)
	}
}

func TestVibrateEmptyPattern(t *testing.T) {
	h := NewRumbleHaptics(1)
	h.rumble = func(uint16, uint16, time.Duration) error {
		t.Error("empty pattern rumbled")
		return nil
	}
	if err := h.Vibrate(nil); err != nil {
		t.Errorf("Vibrate(nil) = %v", err)
	}
	if h.Playing() {
		t.Error("playing after empty pattern")
	}
}
