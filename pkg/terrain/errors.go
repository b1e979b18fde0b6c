package terrain

import "errors"

var (
	// ErrInvalidConfiguration indicates bad dimensions, smoothness or weights.
	ErrInvalidConfiguration = errors.New("terrain: invalid configuration")
	// ErrInvalidState indicates a cell value outside the alphabet during resolution.
	ErrInvalidState = errors.New("terrain: invalid state")
)
