// Package internal contains the core infrastructure for the sora UI package.
// This includes SDL initialization, input processing, theming, icon and text
// rendering, haptics, touch input, configuration and the session flag store.
// Types and functions in this package are not part of the public API.
package internal
