package router_test

import (
	"fmt"

	"github.com/soracell/sora/pkg/sora/router"
)

// Routes - typed constants for compile-time safety
const (
	RouteHome     router.Route = "/(tabs)/home"
	RoutePlans    router.Route = "/(tabs)/plans"
	RouteSettings router.Route = "/(tabs)/settings"
	RouteProfile  router.Route = "/profile"
)

// Tab screens return the route picked from the tab bar, or a secondary screen.
type TabResult struct {
	Target router.Route
	Resume *TabResume
}

type TabInput struct {
	Resume *TabResume
}

type TabResume struct {
	ScrollPosition int
}

type ProfileResult struct{}

// Example demonstrates tab switching with screen registration and transitions.
func Example() {
	r := router.New()

	homeVisits := 0

	r.Register(RouteHome, func(input any) (any, error) {
		homeVisits++
		if homeVisits == 1 {
			fmt.Println("Home: tapping Plans")
			return TabResult{Target: RoutePlans}, nil
		}
		fmt.Println("Home: exiting")
		return TabResult{Target: router.RouteExit}, nil
	})

	r.Register(RoutePlans, func(input any) (any, error) {
		fmt.Printf("Plans: current route is %s, tapping Home\n", r.Current())
		return TabResult{Target: RouteHome}, nil
	})

	// Define all transitions in one place
	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
		res := result.(TabResult)
		return res.Target, TabInput{}
	})

	_ = r.Run(RouteHome, TabInput{})

	// Output:
	// Home: tapping Plans
	// Plans: current route is /(tabs)/plans, tapping Home
	// Home: exiting
}

// Example_backNavigation demonstrates stack-based back navigation with resume state.
func Example_backNavigation() {
	r := router.New()

	visits := 0

	r.Register(RouteSettings, func(input any) (any, error) {
		in := input.(TabInput)
		visits++

		if visits == 1 {
			fmt.Println("Settings: opening profile at scroll 120")
			return TabResult{
				Target: RouteProfile,
				Resume: &TabResume{ScrollPosition: 120},
			}, nil
		}

		fmt.Printf("Settings: restored scroll=%d\n", in.Resume.ScrollPosition)
		return TabResult{Target: router.RouteExit}, nil
	})

	r.Register(RouteProfile, func(input any) (any, error) {
		fmt.Println("Profile: going back")
		return ProfileResult{}, nil
	})

	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
		switch from {
		case RouteSettings:
			res := result.(TabResult)
			if res.Target == RouteProfile {
				stack.Push(from, res.Resume)
				return RouteProfile, nil
			}
			return res.Target, TabInput{}

		case RouteProfile:
			if entry := stack.Pop(); entry != nil {
				in := TabInput{}
				if entry.Resume != nil {
					in.Resume = entry.Resume.(*TabResume)
				}
				return entry.Route, in
			}
			return router.RouteExit, nil
		}
		return router.RouteExit, nil
	})

	_ = r.Run(RouteSettings, TabInput{})

	// Output:
	// Settings: opening profile at scroll 120
	// Profile: going back
	// Settings: restored scroll=120
}
