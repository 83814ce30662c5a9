// Package point implements the abstract N-dimensional integer
// coordinate trait the grid core is built on: chunking, containment,
// overlap, and enumeration helpers that work the same way whether the
// concrete coordinate is 2-D or 3-D.
package point

// Space is the trait a concrete coordinate type implements to
// participate in the grid core. It is parameterised over the concrete
// type itself (Self) so the helper functions in this package can
// return that type directly rather than an interface, the way a
// hand-written 2-D or 3-D point type naturally would.
//
// Axes and FromAxes are the only primitives every other operation in
// this package (overlap, containment, chunk indexing, enumeration) is
// built from, so that Point2D and Point3D can share every algorithm
// here without duplicating it per dimension.
type Space[Self any] interface {
	comparable

	// Axes returns the coordinate's components in a fixed,
	// type-specific order (X, Y for 2-D; X, Y, Z for 3-D, ...).
	Axes() []int

	// FromAxes builds a Self from component values in the same order
	// Axes reports them in. len(axes) always equals the
	// dimensionality of Self.
	FromAxes(axes []int) Self
}
