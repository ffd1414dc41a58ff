package internal

import (
	"testing"

	"github.com/holoplot/go-evdev"
)

func TestTapTrackerReportsOnRelease(t *testing.T) {
	tr := tapTracker{
		xRange: axisRange{min: 0, max: 1000},
		yRange: axisRange{min: 0, max: 500},
	}

	feed := []struct {
		typ   evdev.EvType
		code  evdev.EvCode
		value int32
	}{
		{evdev.EV_KEY, evdev.BTN_TOUCH, 1},
		{evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 250},
		{evdev.EV_ABS, evdev.ABS_MT_POSITION_Y, 100},
		{evdev.EV_SYN, evdev.SYN_REPORT, 0},
		{evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 500},
	}
	for _, ev := range feed {
		if _, ok := tr.feed(ev.typ, ev.code, ev.value); ok {
			t.Fatalf("tap reported before release (%v)", ev)
		}
	}

	tap, ok := tr.feed(evdev.EV_KEY, evdev.BTN_TOUCH, 0)
	if !ok {
		t.Fatal("no tap on release")
	}
	if tap.X != 0.5 || tap.Y != 0.2 {
		t.Errorf("tap = %+v, want {0.5 0.2}", tap)
	}

	if _, ok := tr.feed(evdev.EV_KEY, evdev.BTN_TOUCH, 0); ok {
		t.Error("second release reported a tap")
	}
}

func TestTapTrackerIgnoresOtherKeys(t *testing.T) {
	var tr tapTracker
	tr.feed(evdev.EV_KEY, evdev.BTN_TOUCH, 1)
	if _, ok := tr.feed(evdev.EV_KEY, evdev.BTN_LEFT, 0); ok {
		t.Error("non-touch key produced a tap")
	}
}

func TestAxisRangeNormalize(t *testing.T) {
	r := axisRange{min: 100, max: 300}
	tests := []struct {
		v    int32
		want float64
	}{
		{100, 0},
		{200, 0.5},
		{300, 1},
		{50, 0},
		{400, 1},
	}
	for _, tt := range tests {
		if got := r.normalize(tt.v); got != tt.want {
			t.Errorf("normalize(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}

	if got := (axisRange{}).normalize(5); got != 0 {
		t.Errorf("empty range normalize = %v", got)
	}
}

func TestPickAxisPrefersMultitouch(t *testing.T) {
	infos := map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X:             {Minimum: 0, Maximum: 100},
		evdev.ABS_MT_POSITION_X: {Minimum: 0, Maximum: 1280},
	}
	if got := pickAxis(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X); got.max != 1280 {
		t.Errorf("picked max %d, want 1280", got.max)
	}
	delete(infos, evdev.ABS_MT_POSITION_X)
	if got := pickAxis(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X); got.max != 100 {
		t.Errorf("fallback max %d, want 100", got.max)
	}
}
