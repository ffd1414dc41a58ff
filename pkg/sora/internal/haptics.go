package internal

import (
	"errors"
	"time"

	"go.uber.org/atomic"
)

// ErrHapticsUnavailable is returned when no rumble-capable controller is connected.
var ErrHapticsUnavailable = errors.New("haptics unavailable")

// DefaultRumbleStrength is the motor strength used for the "on" segments.
const DefaultRumbleStrength uint16 = 0xC000

// RumbleHaptics plays vibration patterns on the first connected controller.
//
// A pattern alternates off and on durations starting with off, so
// [0, 50, 50, 50] buzzes twice for 50ms. Starting a new pattern cancels
// the one still playing.
type RumbleHaptics struct {
	Strength uint16

	generation atomic.Int64
	playing    atomic.Bool

	rumble func(low, high uint16, d time.Duration) error
	sleep  func(time.Duration)
}

func NewRumbleHaptics(strength uint16) *RumbleHaptics {
	return &RumbleHaptics{Strength: strength, sleep: time.Sleep}
}

// Vibrate starts the pattern and returns immediately.
func (h *RumbleHaptics) Vibrate(pattern []time.Duration) error {
	rumble := h.rumble
	if rumble == nil {
		pad := firstController()
		if pad == nil {
			return ErrHapticsUnavailable
		}
		rumble = func(low, high uint16, d time.Duration) error {
			return pad.Rumble(low, high, uint32(d.Milliseconds()))
		}
	}
	if len(pattern) == 0 {
		return nil
	}

	gen := h.generation.Inc()
	h.playing.Store(true)
	go h.play(gen, pattern, rumble)
	return nil
}

func (h *RumbleHaptics) play(gen int64, pattern []time.Duration, rumble func(uint16, uint16, time.Duration) error) {
	current := func() bool { return h.generation.Load() == gen }
	defer func() {
		if current() {
			h.playing.Store(false)
		}
	}()

	for i, d := range pattern {
		if !current() {
			return
		}
		if i%2 == 1 && d > 0 {
			if err := rumble(h.Strength, h.Strength, d); err != nil {
				GetInternalLogger().Debug("Rumble failed", "error", err)
				return
			}
		}
		h.sleep(d)
	}
}

// Playing reports whether a pattern is still running.
func (h *RumbleHaptics) Playing() bool {
	return h.playing.Load()
}

// Stop cancels any pattern in progress and silences the motor.
func (h *RumbleHaptics) Stop() {
	h.generation.Inc()
	h.playing.Store(false)
	if h.rumble == nil {
		if pad := firstController(); pad != nil {
			pad.Rumble(0, 0, 0)
		}
	}
}
