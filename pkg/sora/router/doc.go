// Package router provides screen navigation with explicit data flow.
//
// Screens are addressed by Route, the path of the screen in the app's
// file-based layout ("/(tabs)/home", "/profile"). Each screen has explicit
// input and result types and a single transition function holds all routing
// logic. This makes data flow traceable and avoids hidden global state.
//
// # Basic Usage
//
//	const (
//	    RouteHome    router.Route = "/(tabs)/home"
//	    RouteProfile router.Route = "/profile"
//	)
//
//	type HomeResult struct {
//	    Target router.Route // route chosen from the tab bar or a shortcut
//	}
//
//	r := router.New()
//
//	r.Register(RouteHome, func(input any) (any, error) {
//	    return homeScreen(input.(HomeInput)), nil
//	})
//
//	r.Register(RouteProfile, func(input any) (any, error) {
//	    return profileScreen(), nil
//	})
//
//	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
//	    switch from {
//	    case RouteHome:
//	        res := result.(HomeResult)
//	        if res.Target == RouteProfile {
//	            // Push current state for back navigation
//	            stack.Push(from, nil)
//	            return RouteProfile, nil
//	        }
//	        return res.Target, nil
//	    case RouteProfile:
//	        if entry := stack.Pop(); entry != nil {
//	            return entry.Route, entry.Resume
//	        }
//	    }
//	    return router.RouteExit, nil
//	})
//
//	r.Run(RouteHome, HomeInput{})
//
// # Current Route
//
// Current reports the route whose screen is running. The floating tab bar
// reads it to decide which destination is active.
//
// # Back Stack
//
// A screen opening a secondary screen pushes its own route with the state it
// wants back (a focused row, a scroll offset). Going back pops that entry and
// hands the state to the screen as its input. Each route is on the stack at
// most once: Push moves an existing entry to the top, and Unwind returns to a
// route that is already on the stack, dropping everything above it.
package router
