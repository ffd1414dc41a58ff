package sora

import "github.com/soracell/sora/pkg/sora/navigation"

// TabAction is how a FloatingNavigation screen was left.
type TabAction int

const (
	TabActionNavigated TabAction = iota // A bar item was pressed and its navigation fired
	TabActionSelected                   // A content row was activated (A button or tap)
)

func (a TabAction) String() string {
	switch a {
	case TabActionNavigated:
		return "navigated"
	case TabActionSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// FloatingNavigationResult is returned when a tab screen exits.
type FloatingNavigationResult struct {
	Action TabAction
	Route  navigation.RouteID // Target route for TabActionNavigated
	Row    int                // Row index for TabActionSelected
	Value  any                // Row value for TabActionSelected
}

// InfoAction is how an InfoScreen was left.
type InfoAction int

const (
	InfoActionBack      InfoAction = iota // Back button, B, or the back chevron
	InfoActionConfirmed                   // The primary action (A or tapping the action button)
)

// InfoResult is returned when an InfoScreen exits.
type InfoResult struct {
	Action InfoAction
}

// SelectionMessageResult represents the option chosen in a SelectionMessage.
type SelectionMessageResult struct {
	SelectedIndex int
	SelectedValue any
}
