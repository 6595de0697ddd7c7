package clsvg

import "errors"

// Sentinel errors returned by the path, group, and svgpath layers. Wrap with
// fmt.Errorf("%w: ...", ...) at the call site to attach detail; callers can
// still errors.Is against the sentinel.
var (
	// ErrInvalidArgument is returned for malformed numeric input or a
	// parameter outside the [0,1] interval an operation requires.
	ErrInvalidArgument = errors.New("clsvg: invalid argument")

	// ErrClosedPath is returned when a mutation is attempted against a
	// path that has already been closed, or when two closed paths are
	// joined as if they were still open.
	ErrClosedPath = errors.New("clsvg: path is closed")

	// ErrDegenerateRay is returned when containsPos exhausts a full 2*pi
	// rotation sweep without finding a ray direction free of on-boundary
	// or collinear degeneracies.
	ErrDegenerateRay = errors.New("clsvg: no usable ray direction")

	// ErrOpenOutline is returned when toOutline fails to close one of its
	// two output sides after stroking a path that was supposed to close.
	ErrOpenOutline = errors.New("clsvg: outline failed to close")
)
