package main

import (
	"fmt"

	"github.com/soracell/sora/pkg/sora"
	"github.com/soracell/sora/pkg/sora/navigation"
	"github.com/soracell/sora/pkg/sora/router"
)

const (
	RouteIndex     router.Route = "/"
	RouteSignIn    router.Route = "/(auth)/signin"
	RouteHome      router.Route = "/(tabs)/home"
	RoutePlans     router.Route = "/(tabs)/plans"
	RouteSettings  router.Route = "/(tabs)/settings"
	RouteProfile   router.Route = "/profile"
	RouteDataUsage router.Route = "/data-usage"
	RouteUpdate    router.Route = "/update"
	RouteMore      router.Route = "/more"
)

type navMode int

const (
	navReplace navMode = iota // swap the current screen, keep the back stack
	navPush                   // open a secondary screen on top of the current one
	navBack                   // return to the screen below
	navReset                  // clear the back stack, e.g. on sign-in and sign-out
)

// outcome is what every screen returns to the router.
type outcome struct {
	next   router.Route
	mode   navMode
	input  any
	resume any // handed back to the pushing screen when it is returned to
}

func replaceWith(r router.Route) outcome { return outcome{next: r, mode: navReplace} }
func push(r router.Route) outcome        { return outcome{next: r, mode: navPush} }
func back() outcome                      { return outcome{mode: navBack} }
func resetTo(r router.Route) outcome     { return outcome{next: r, mode: navReset} }
func exit() outcome                      { return outcome{next: router.RouteExit, mode: navReset} }

// transition applies a screen's outcome to the back stack. Backing out of
// an empty stack lands on the home tab. Pushing a screen that is already
// stacked returns to it instead of stacking it twice.
func transition(from router.Route, result any, stack *router.Stack) (router.Route, any) {
	o, ok := result.(outcome)
	if !ok {
		return router.RouteExit, nil
	}

	switch o.mode {
	case navPush:
		if entry := stack.Unwind(o.next); entry != nil {
			return entry.Route, entry.Resume
		}
		stack.Push(from, o.resume)
	case navBack:
		if entry := stack.Pop(); entry != nil {
			return entry.Route, entry.Resume
		}
		return RouteHome, nil
	case navReset:
		stack.Clear()
	}
	return o.next, o.input
}

// validateTabRoutes reports configured bar items whose route has no
// registered tab screen.
func validateTabRoutes(r *router.Router, items []navigation.Item) error {
	for i, item := range items {
		if router.Route(item.Route).Group() != "tabs" || !r.Registered(router.Route(item.Route)) {
			return fmt.Errorf("%w: item %d route %q is not a tab screen", sora.ErrInvalidConfig, i, item.Route)
		}
	}
	return nil
}
