// Package demotile is a minimal tile type exercising the grid
// package's reference generators. It is the repurposed stand-in for
// the voxel block type the teacher's world package generates, trimmed
// to the two traits Connectivity and AllConnected require.
package demotile

import "gridcore/internal/point"

// Tile is a single grid cell: walkable or not, with adjacency edges to
// other passable tiles.
type Tile struct {
	Passable bool
	edges    map[point.Point2D]struct{}
}

// IsPassable implements tile.Passable.
func (t *Tile) IsPassable() bool { return t.Passable }

// SetPassable implements tile.Passable.
func (t *Tile) SetPassable(p bool) { t.Passable = p }

// Edges implements tile.Connected.
func (t *Tile) Edges() map[point.Point2D]struct{} {
	if t.edges == nil {
		t.edges = make(map[point.Point2D]struct{})
	}
	return t.edges
}

// AddEdge implements tile.Connected.
func (t *Tile) AddEdge(p point.Point2D) {
	if t.edges == nil {
		t.edges = make(map[point.Point2D]struct{})
	}
	t.edges[p] = struct{}{}
}
