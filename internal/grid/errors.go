package grid

import "errors"

var (
	// ErrOutOfRegion is returned by a guard accessor when asked to
	// touch a point not contained in the region(s) it locked.
	ErrOutOfRegion = errors.New("grid: point outside guard region")

	// ErrUngeneratedAccess is returned by Map.Get/Map.GetMut when the
	// chunk containing the requested point has never been generated.
	ErrUngeneratedAccess = errors.New("grid: chunk not generated")
)
