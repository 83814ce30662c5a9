package grid

import "gridcore/internal/point"

// testTile is the minimal Passable+Connected tile used across this
// package's tests, kept local to avoid a test-only import cycle with
// demotile (which imports grid).
type testTile struct {
	passable bool
	edges    map[point.Point2D]struct{}
}

func (t *testTile) IsPassable() bool   { return t.passable }
func (t *testTile) SetPassable(p bool) { t.passable = p }

func (t *testTile) Edges() map[point.Point2D]struct{} {
	if t.edges == nil {
		t.edges = make(map[point.Point2D]struct{})
	}
	return t.edges
}

func (t *testTile) AddEdge(p point.Point2D) {
	if t.edges == nil {
		t.edges = make(map[point.Point2D]struct{})
	}
	t.edges[p] = struct{}{}
}
