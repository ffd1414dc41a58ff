package main

import (
	"errors"
	"testing"

	"github.com/soracell/sora/pkg/sora"
	"github.com/soracell/sora/pkg/sora/navigation"
	"github.com/soracell/sora/pkg/sora/router"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name      string
		from      router.Route
		prepare   func(*router.Stack)
		result    any
		wantNext  router.Route
		wantDepth int
	}{
		{"replace keeps stack", RouteHome, func(s *router.Stack) { s.Push(RouteSettings, nil) }, replaceWith(RoutePlans), RoutePlans, 1},
		{"push records origin", RouteSettings, nil, push(RouteProfile), RouteProfile, 1},
		{"back pops", RouteProfile, func(s *router.Stack) { s.Push(RouteSettings, nil) }, back(), RouteSettings, 0},
		{"back on empty stack goes home", RouteProfile, nil, back(), RouteHome, 0},
		{"reset clears stack", RouteMore, func(s *router.Stack) { s.Push(RouteSettings, nil) }, resetTo(RouteSignIn), RouteSignIn, 0},
		{"exit", RouteHome, nil, exit(), router.RouteExit, 0},
		{"unknown result exits", RouteHome, nil, "not an outcome", router.RouteExit, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := router.NewStack()
			if tt.prepare != nil {
				tt.prepare(stack)
			}
			next, _ := transition(tt.from, tt.result, stack)
			if next != tt.wantNext {
				t.Errorf("next = %q, want %q", next, tt.wantNext)
			}
			if stack.Len() != tt.wantDepth {
				t.Errorf("stack depth = %d, want %d", stack.Len(), tt.wantDepth)
			}
		})
	}
}

func TestTransitionCarriesInput(t *testing.T) {
	o := replaceWith(RoutePlans)
	o.input = "middle"
	if _, input := transition(RouteHome, o, router.NewStack()); input != "middle" {
		t.Errorf("input = %v, want middle", input)
	}
}

func TestRoutesDriveSecondaryScreens(t *testing.T) {
	settingsVisits := 0
	r := router.New().
		Register(RouteSettings, func(any) (any, error) {
			settingsVisits++
			if settingsVisits == 1 {
				return push(RouteProfile), nil
			}
			return exit(), nil
		}).
		Register(RouteDataUsage, func(any) (any, error) { return back(), nil }).
		OnTransition(transition)

	profileVisits := 0
	r.Register(RouteProfile, func(any) (any, error) {
		profileVisits++
		if profileVisits == 1 {
			return push(RouteDataUsage), nil
		}
		return back(), nil
	})

	if err := r.Run(RouteSettings, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []router.Route{RouteSettings, RouteProfile, RouteDataUsage, RouteProfile, RouteSettings}
	got := r.History()
	if len(got) != len(want) {
		t.Fatalf("history = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !r.Stack().IsEmpty() {
		t.Errorf("stack not empty after exit: %d entries", r.Stack().Len())
	}
}

func TestTransitionRestoresResumeOnBack(t *testing.T) {
	stack := router.NewStack()
	o := push(RouteDataUsage)
	o.resume = 1

	if next, _ := transition(RouteHome, o, stack); next != RouteDataUsage {
		t.Fatalf("next = %q", next)
	}
	next, input := transition(RouteDataUsage, back(), stack)
	if next != RouteHome || input != 1 {
		t.Errorf("back = %q, %v; want %q, 1", next, input, RouteHome)
	}
}

func TestTransitionPushToStackedScreenReturnsToIt(t *testing.T) {
	stack := router.NewStack()

	// home opens data usage, which opens plans
	transition(RouteHome, push(RouteDataUsage), stack)
	transition(RouteDataUsage, push(RoutePlans), stack)
	// the bar switches to home, which opens data usage again
	transition(RoutePlans, replaceWith(RouteHome), stack)
	next, _ := transition(RouteHome, push(RouteDataUsage), stack)

	if next != RouteDataUsage {
		t.Fatalf("next = %q", next)
	}
	if got := stack.Routes(); len(got) != 1 || got[0] != RouteHome {
		t.Errorf("stack = %v, want [%s]", got, RouteHome)
	}
}

func TestValidateTabRoutes(t *testing.T) {
	r := newApp(sora.DefaultConfig()).routes()

	if err := validateTabRoutes(r, sora.NavItems(sora.DefaultConfig())); err != nil {
		t.Errorf("default items rejected: %v", err)
	}

	tests := []struct {
		name  string
		route navigation.RouteID
	}{
		{"unregistered", "/foo"},
		{"unregistered tab", "/(tabs)/wallet"},
		{"secondary screen", navigation.RouteID(RouteProfile)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []navigation.Item{
				{Label: "nav_home", Icon: "home", Route: navigation.RouteID(RouteHome)},
				{Label: "nav_plans", Icon: "cellular", Route: tt.route},
			}
			if err := validateTabRoutes(r, items); !errors.Is(err, sora.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
