package router

// StackEntry is a screen to come back to and the state it asked to be
// restored with, such as the focused row.
type StackEntry struct {
	Route  Route
	Resume any
}

// Stack is the back stack of secondary navigation. Each route appears on
// it at most once.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records route as the screen to return to. A route already on the
// stack is moved to the top with the new resume state.
func (s *Stack) Push(route Route, resume any) {
	s.remove(route)
	s.entries = append(s.entries, StackEntry{Route: route, Resume: resume})
}

// Pop removes and returns the top entry, or nil when the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Unwind pops everything down to and including route and returns its
// entry. When route is not on the stack it returns nil and leaves the
// stack alone.
func (s *Stack) Unwind(route Route) *StackEntry {
	i := s.index(route)
	if i < 0 {
		return nil
	}
	entry := s.entries[i]
	s.entries = s.entries[:i]
	return &entry
}

// Routes lists the stacked routes, bottom first.
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}

func (s *Stack) index(route Route) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Route == route {
			return i
		}
	}
	return -1
}

func (s *Stack) remove(route Route) {
	if i := s.index(route); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) Clear() {
	s.entries = nil
}
