package core

import "errors"

// Sentinel errors shared by every interpolation engine. Constructors and
// evaluators wrap them with call-site context via fmt.Errorf("...: %w", err),
// so callers should match with errors.Is.
var (
	// ErrInvalidDomain indicates coordinates that are too few, not strictly
	// increasing, or value arrays whose shape does not match the coordinates.
	ErrInvalidDomain = errors.New("core: invalid interpolation domain")

	// ErrNonuniformGrid indicates a grid axis whose spacing varies beyond the
	// uniformity tolerance.
	ErrNonuniformGrid = errors.New("core: grid axis is not uniformly spaced")

	// ErrOutOfDomain indicates an evaluation query outside the fitted range
	// while bounds enforcement is in effect.
	ErrOutOfDomain = errors.New("core: query point outside the fitted domain")
)
