package physics

import "errors"

// ErrInvalidConfiguration is returned by the constructors when the arena, the radius or speed
// bounds, or the requested body count cannot produce a valid simulation.
var ErrInvalidConfiguration = errors.New("physics: invalid configuration")

// ErrInvalidStep is returned by Advance for a non-positive or non-finite time delta.
// The simulation state is not modified when it is returned.
var ErrInvalidStep = errors.New("physics: invalid step")
