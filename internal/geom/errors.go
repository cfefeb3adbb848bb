package geom

import "errors"

// Domain errors for reflector construction.
var (
	// ErrNonPositiveFocus indicates a focal length f <= 0; the curve
	// y = x²/(4f) is degenerate at f = 0 and the demo never opens downward.
	ErrNonPositiveFocus = errors.New("geom: focal length must be positive")

	// ErrZeroDirection indicates a ray with a (0,0) direction vector.
	ErrZeroDirection = errors.New("geom: ray direction must be nonzero")
)
