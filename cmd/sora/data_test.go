package main

import (
	"testing"
	"time"
)

func TestUsagePercent(t *testing.T) {
	tests := []struct {
		u    Usage
		want int
	}{
		{currentUsage, 32},
		{Usage{UsedHours: 10, TotalHours: 10}, 100},
		{Usage{UsedHours: 5}, 0},
	}
	for _, tt := range tests {
		if got := tt.u.Percent(); got != tt.want {
			t.Errorf("%+v.Percent() = %d, want %d", tt.u, got, tt.want)
		}
	}
}

func TestPlanByID(t *testing.T) {
	p, ok := planByID("middle")
	if !ok || p.Price != "$45.99" || !p.Popular {
		t.Errorf("planByID(middle) = %+v, %v", p, ok)
	}
	if _, ok := planByID("gold"); ok {
		t.Error("unknown plan found")
	}
}

func TestGreetingID(t *testing.T) {
	tests := map[int]string{
		0:  "greeting_morning",
		11: "greeting_morning",
		12: "greeting_afternoon",
		17: "greeting_afternoon",
		18: "greeting_evening",
		23: "greeting_evening",
	}
	for hour, want := range tests {
		if got := greetingID(hour); got != want {
			t.Errorf("greetingID(%d) = %q, want %q", hour, got, want)
		}
	}
}

func TestDownloadProgressesRandomlyToCompletion(t *testing.T) {
	d := newDownload(42)
	var slept []time.Duration
	var seen []float64
	d.sleep = func(dur time.Duration) {
		slept = append(slept, dur)
		seen = append(seen, d.progress.Load())
	}

	if _, err := d.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := d.progress.Load(); got != 1 {
		t.Fatalf("final progress = %v, want 1", got)
	}

	// the first sleep happens before any progress and the last one holds at full
	if seen[0] != 0 || slept[len(slept)-1] != d.finish || seen[len(seen)-1] != 1 {
		t.Errorf("unexpected sleeps %v with progress %v", slept, seen)
	}
	ticks := len(slept) - 1
	if ticks < 7 {
		t.Errorf("finished in %d ticks; steps of at most 15%% need at least 7", ticks)
	}
	for i := 1; i < len(seen); i++ {
		if step := seen[i] - seen[i-1]; step < 0 || step > d.maxStep {
			t.Errorf("step %d = %v, want within [0, %v]", i, step, d.maxStep)
		}
	}

	again := newDownload(42)
	var first []float64
	again.sleep = func(time.Duration) { first = append(first, again.progress.Load()) }
	again.run()
	if len(first) != len(seen) {
		t.Errorf("same seed took %d ticks, then %d", len(seen), len(first))
	}
}
