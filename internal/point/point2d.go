package point

// Point2D is the concrete 2-D coordinate used throughout the grid
// core's default instantiation. It is a plain comparable struct, so
// it is cheap to copy, hashable as a map key, and safe to share across
// goroutines.
type Point2D struct {
	X int
	Y int
}

func (p Point2D) Axes() []int {
	return []int{p.X, p.Y}
}

func (Point2D) FromAxes(axes []int) Point2D {
	return Point2D{X: axes[0], Y: axes[1]}
}

// Add returns p shifted by the given per-axis delta.
func (p Point2D) Add(dx, dy int) Point2D {
	return Point2D{X: p.X + dx, Y: p.Y + dy}
}
