package engine

import "errors"

// Error variables cover the engine's narrow failure surface; inputs are
// otherwise assumed validated by their producers.
var (
	// ErrInvalidMatrix indicates a module matrix that is empty,
	// non-square, or has rows of unequal length.
	ErrInvalidMatrix = errors.New("invalid module matrix")

	// ErrUnknownShape indicates a module shape outside the supported
	// set (square, circle, star, heart).
	ErrUnknownShape = errors.New("unknown module shape")

	// ErrUnknownBackgroundShape indicates a background shape outside
	// the supported set (square, circle).
	ErrUnknownBackgroundShape = errors.New("unknown background shape")

	// ErrUnknownLevel indicates an unrecognized error-correction level
	// name.
	ErrUnknownLevel = errors.New("unknown error correction level")
)
