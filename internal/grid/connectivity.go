package grid

import (
	"gridcore/internal/point"
	"gridcore/internal/tile"
)

// Connectivity links every passable tile in core to its passable
// orthogonal neighbours, writing reciprocal edges. Neighbours outside
// core but inside umbra are read and written too, so a chunk's
// generation also repairs the edges of tiles on the far side of an
// already-generated neighbour's boundary.
type Connectivity[P point.Space[P], T any, PT interface {
	*T
	tile.Passable
	tile.Connected[P]
}] struct{}

func (Connectivity[P, T, PT]) Generate(chunk *WriteGuard[P, T], core, umbra point.Rect[P]) {
	for _, p := range point.PointsInRegion(core) {
		pt, err := chunk.GetMut(p)
		if err != nil {
			continue
		}
		ppt := PT(pt)
		if !ppt.IsPassable() {
			continue
		}
		for _, q := range point.Neighbours(p) {
			if !point.Contained(q, umbra) {
				continue
			}
			qt, err := chunk.GetMut(q)
			if err != nil {
				continue
			}
			qpt := PT(qt)
			if !qpt.IsPassable() {
				continue
			}
			ppt.AddEdge(q)
			qpt.AddEdge(p)
		}
	}
}
