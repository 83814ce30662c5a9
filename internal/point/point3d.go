package point

// Point3D is the concrete 3-D coordinate case. It shares every
// algorithm in this package with Point2D through the Space trait —
// only Axes/FromAxes differ.
type Point3D struct {
	X int
	Y int
	Z int
}

func (p Point3D) Axes() []int {
	return []int{p.X, p.Y, p.Z}
}

func (Point3D) FromAxes(axes []int) Point3D {
	return Point3D{X: axes[0], Y: axes[1], Z: axes[2]}
}

func (p Point3D) Add(dx, dy, dz int) Point3D {
	return Point3D{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}
