package internal

import (
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// TouchEvent is a completed tap in normalized panel coordinates (0..1).
type TouchEvent struct {
	X, Y float64
}

type axisRange struct {
	min, max int32
}

func (r axisRange) normalize(v int32) float64 {
	if r.max <= r.min {
		return 0
	}
	n := float64(v-r.min) / float64(r.max-r.min)
	return clamp01(n)
}

// tapTracker folds raw evdev events into taps. A tap is reported on finger
// release at the last reported position.
type tapTracker struct {
	x, y   int32
	down   bool
	xRange axisRange
	yRange axisRange
}

func (t *tapTracker) feed(typ evdev.EvType, code evdev.EvCode, value int32) (TouchEvent, bool) {
	switch typ {
	case evdev.EV_ABS:
		switch code {
		case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
			t.x = value
		case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
			t.y = value
		}
	case evdev.EV_KEY:
		if code != evdev.BTN_TOUCH {
			return TouchEvent{}, false
		}
		wasDown := t.down
		t.down = value != 0
		if wasDown && !t.down {
			return TouchEvent{X: t.xRange.normalize(t.x), Y: t.yRange.normalize(t.y)}, true
		}
	}
	return TouchEvent{}, false
}

// TouchReader reads taps from a touch panel on its own goroutine.
type TouchReader struct {
	dev     *evdev.InputDevice
	events  chan TouchEvent
	running atomic.Bool
	wg      sync.WaitGroup
	tracker tapTracker
}

// OpenTouchReader opens the evdev device at path and starts reading.
func OpenTouchReader(path string) (*TouchReader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touch device %s: %w", path, err)
	}

	r := &TouchReader{
		dev:    dev,
		events: make(chan TouchEvent, 8),
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("read touch axes %s: %w", path, err)
	}
	r.tracker.xRange = pickAxis(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	r.tracker.yRange = pickAxis(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)

	name, _ := dev.Name()
	GetInternalLogger().Debug("Touch panel opened", "path", path, "name", name,
		"x_max", r.tracker.xRange.max, "y_max", r.tracker.yRange.max)

	r.running.Store(true)
	r.wg.Add(1)
	go r.loop()
	return r, nil
}

func pickAxis(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) axisRange {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return axisRange{min: info.Minimum, max: info.Maximum}
		}
	}
	return axisRange{}
}

func (r *TouchReader) loop() {
	defer r.wg.Done()

	for r.running.Load() {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.running.Load() {
				GetInternalLogger().Warn("Touch reader stopped", "error", err)
			}
			return
		}

		tap, ok := r.tracker.feed(ev.Type, ev.Code, ev.Value)
		if !ok {
			continue
		}
		select {
		case r.events <- tap:
		default:
			GetInternalLogger().Debug("Dropping touch event; consumer is behind")
		}
	}
}

// Events delivers completed taps.
func (r *TouchReader) Events() <-chan TouchEvent {
	return r.events
}

// Drain returns every tap currently queued without blocking.
func (r *TouchReader) Drain() []TouchEvent {
	var taps []TouchEvent
	for {
		select {
		case tap := <-r.events:
			taps = append(taps, tap)
		default:
			return taps
		}
	}
}

// Close stops the reader and waits for its goroutine to exit.
func (r *TouchReader) Close() error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}
	err := r.dev.Close()
	r.wg.Wait()
	return err
}
