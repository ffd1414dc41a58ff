package sora

import (
	"testing"
	"time"

	"github.com/soracell/sora/pkg/sora/navigation"
)

func TestNavItemsFromDefaultConfig(t *testing.T) {
	items := NavItems(DefaultConfig())
	want := []navigation.Item{
		{Label: "nav_home", Icon: "home", Route: "/(tabs)/home"},
		{Label: "nav_plans", Icon: "cellular", Route: "/(tabs)/plans"},
		{Label: "nav_settings", Icon: "settings", Route: "/(tabs)/settings"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}

	if _, err := NewTabBar(items, navigation.Options{}); err != nil {
		t.Errorf("default items rejected by controller: %v", err)
	}
}

func TestNavigationOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NavigateDelay = 250 * time.Millisecond

	opts := NavigationOptions(cfg)
	if opts.NavigateDelay != 250*time.Millisecond {
		t.Errorf("NavigateDelay = %v", opts.NavigateDelay)
	}
	if len(opts.HapticPattern) != 4 || opts.HapticPattern[1] != 50*time.Millisecond {
		t.Errorf("HapticPattern = %v", opts.HapticPattern)
	}
	if opts.Logger == nil {
		t.Error("no logger wired")
	}
	if opts.Haptics != nil {
		t.Error("haptics wired without an initialized runtime")
	}
}
