package router

import (
	"errors"
	"fmt"
)

// Route identifies a screen by its path, for example "/(tabs)/home".
// Routes mirror the file-based layout of the app: groups in parentheses
// collect screens that share a shell, such as the tab bar.
type Route string

// Group returns the parenthesised group segment of the route, or "".
//
//	Route("/(tabs)/home").Group() == "tabs"
func (r Route) Group() string {
	s := string(r)
	if len(s) < 2 || s[0] != '/' || s[1] != '(' {
		return ""
	}
	for i := 2; i < len(s); i++ {
		if s[i] == ')' {
			return s[2:i]
		}
	}
	return ""
}

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the route that just completed, its result, and the navigation stack.
// It returns the next route to navigate to and its input.
//
// Return (route, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (RouteExit, nil) to exit the router.
type TransitionFunc func(from Route, result any, stack *Stack) (next Route, input any)

// RouteExit is a special Route value that signals the router to exit.
const RouteExit Route = "-"

var (
	ErrNoTransition  = errors.New("router: no transition function set")
	ErrNotRegistered = errors.New("router: route not registered")
)

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Route]ScreenFunc
	transition TransitionFunc
	stack      *Stack
	current    Route
	history    []Route
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Route]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this route.
func (r *Router) Register(route Route, fn ScreenFunc) *Router {
	r.screens[route] = fn
	return r
}

// Registered reports whether a screen is registered for route.
func (r *Router) Registered(route Route) bool {
	_, ok := r.screens[route]
	return ok
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given route with the given input.
// It continues running until the transition function returns RouteExit
// or an error occurs.
func (r *Router) Run(start Route, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotRegistered, current)
		}

		r.current = current
		r.history = append(r.history, current)

		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s error: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)

		if next == RouteExit {
			r.current = ""
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Current returns the route of the screen that is running, or "" when the
// router is not running. Screens use it to highlight their own tab.
func (r *Router) Current() Route {
	return r.current
}

// History returns every route visited by Run, in order.
func (r *Router) History() []Route {
	return append([]Route(nil), r.history...)
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
