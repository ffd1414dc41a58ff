package sora

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a screen (B button or window close).
	// This is normal flow control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNotInitialized is returned by screens when Init has not run.
	ErrNotInitialized = errors.New("sora: not initialized")
)

// InfrastructureError is a failure of the UI runtime itself (SDL, fonts,
// icon rasterization) rather than of the application's flow.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "icon")
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sora: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sora: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
