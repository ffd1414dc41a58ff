package navigation

import "errors"

// Configuration errors returned by NewController.
var (
	ErrNoItems        = errors.New("navigation: at least one item is required")
	ErrEmptyRoute     = errors.New("navigation: item route is empty")
	ErrDuplicateRoute = errors.New("navigation: duplicate item route")
	ErrNilNavigator   = errors.New("navigation: navigator is nil")
)
