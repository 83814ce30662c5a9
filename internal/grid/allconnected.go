package grid

import (
	"gridcore/internal/point"
	"gridcore/internal/tile"
)

// AllConnected guarantees that every passable tile in core ends up in
// a single connected component, carving through impassable tiles to
// merge components together. It never removes passability, and it
// never writes outside core.
//
// Components that already touch a passable tile in an already-
// generated neighbour (a tile in umbra but outside core) are treated
// as anchored to existing terrain: AllConnected prefers to grow other
// components toward an anchored one rather than grow the anchored one
// away from it, biasing new corridors toward already-explored terrain.
//
// Run AllConnected after any generator that lays down passability, and
// before Connectivity, so the edges Connectivity writes reflect the
// corridors this pass carves.
type AllConnected[P point.Space[P], T any, PT interface {
	*T
	tile.Passable
	tile.Connected[P]
}] struct{}

func (AllConnected[P, T, PT]) Generate(chunk *WriteGuard[P, T], core, umbra point.Rect[P]) {
	corePoints := point.PointsInRegion(core)
	coreSet := make(map[P]bool, len(corePoints))
	for _, p := range corePoints {
		coreSet[p] = true
	}

	passable := func(p P) bool {
		t, err := chunk.GetMut(p)
		if err != nil {
			return false
		}
		return PT(t).IsPassable()
	}

	// Components are keyed by a stable id that is never reassigned, so
	// label[p] always indexes the live components/anchored maps even
	// after other components have been merged away.
	label := make(map[P]int)
	components := make(map[int][]P)
	anchored := make(map[int]bool)
	nextID := 0

	for _, p := range corePoints {
		if _, seen := label[p]; seen || !passable(p) {
			continue
		}
		id := nextID
		nextID++
		members := floodFillCore(p, coreSet, passable, label, id)
		components[id] = members
		anchored[id] = touchesGeneratedNeighbour(members, coreSet, umbra, passable)
	}

	for len(components) > 1 {
		from := pickSmallestUnanchored(components, anchored)
		into := growUntilMerge[P, T, PT](chunk, coreSet, passable, label, components, from)
		mergeInto(components, anchored, from, into, label)
	}

	for _, members := range components {
		wireComponentEdges[P, T, PT](chunk, members)
	}
}

func floodFillCore[P point.Space[P]](start P, coreSet map[P]bool, passable func(P) bool, label map[P]int, id int) []P {
	queue := []P{start}
	label[start] = id
	members := []P{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, q := range point.Neighbours(p) {
			if !coreSet[q] {
				continue
			}
			if _, seen := label[q]; seen {
				continue
			}
			if !passable(q) {
				continue
			}
			label[q] = id
			members = append(members, q)
			queue = append(queue, q)
		}
	}
	return members
}

// touchesGeneratedNeighbour reports whether any member of a component
// has an orthogonal neighbour outside core but inside umbra that is
// already passable — i.e. the component abuts an already-generated
// neighbour's terrain.
func touchesGeneratedNeighbour[P point.Space[P]](members []P, coreSet map[P]bool, umbra point.Rect[P], passable func(P) bool) bool {
	for _, p := range members {
		for _, q := range point.Neighbours(p) {
			if coreSet[q] || !point.Contained(q, umbra) {
				continue
			}
			if passable(q) {
				return true
			}
		}
	}
	return false
}

// pickSmallestUnanchored picks the smallest component, preferring
// components not already anchored to existing terrain so growth is
// biased toward connecting new corridors into anchored terrain rather
// than growing anchored terrain away from it. Falls back to the
// smallest component overall when every remaining component is
// anchored.
func pickSmallestUnanchored[P comparable](components map[int][]P, anchored map[int]bool) int {
	best := -1
	for id, c := range components {
		if anchored[id] {
			continue
		}
		if best == -1 || len(c) < len(components[best]) {
			best = id
		}
	}
	if best != -1 {
		return best
	}
	for id, c := range components {
		if best == -1 || len(c) < len(components[best]) {
			best = id
		}
	}
	return best
}

// growUntilMerge expands component `from` outward, one BFS layer of
// impassable core tiles converted to passable at a time, until the
// frontier touches a tile belonging to a different component. It
// returns that component's id. The core is one connected rectangle, so
// while another component exists the frontier always reaches it; each
// merge then strictly shrinks the number of components, so the outer
// merge loop always terminates. Every tile the growth claims is
// appended to components[from], so mergeInto relabels it along with
// the rest and a label read here always refers to a component still
// present in `components`.
func growUntilMerge[P point.Space[P], T any, PT interface {
	*T
	tile.Passable
	tile.Connected[P]
}](chunk *WriteGuard[P, T], coreSet map[P]bool, passable func(P) bool, label map[P]int, components map[int][]P, from int) int {
	visited := make(map[P]bool)
	queue := append([]P(nil), components[from]...)
	for _, p := range queue {
		visited[p] = true
	}

	for len(queue) > 0 {
		var next []P
		for _, p := range queue {
			for _, q := range point.Neighbours(p) {
				if !coreSet[q] || visited[q] {
					continue
				}
				if id, seen := label[q]; seen {
					if id != from {
						return id
					}
					visited[q] = true
					continue
				}
				visited[q] = true
				if passable(q) {
					label[q] = from
					components[from] = append(components[from], q)
					next = append(next, q)
					continue
				}
				t, err := chunk.GetMut(q)
				if err != nil {
					continue
				}
				PT(t).SetPassable(true)
				label[q] = from
				components[from] = append(components[from], q)
				next = append(next, q)
			}
		}
		queue = next
	}
	return from
}

// mergeInto folds component `from` into component `into` in place:
// it appends from's members onto into's, relabels them, and deletes
// the now-empty `from` entry. Component ids are never reused or
// shifted, so every other component's id and label stay valid.
func mergeInto[P comparable](components map[int][]P, anchored map[int]bool, from, into int, label map[P]int) {
	if from == into {
		return
	}
	for _, p := range components[from] {
		label[p] = into
	}
	components[into] = append(components[into], components[from]...)
	anchored[into] = anchored[into] || anchored[from]
	delete(components, from)
	delete(anchored, from)
}

func wireComponentEdges[P point.Space[P], T any, PT interface {
	*T
	tile.Passable
	tile.Connected[P]
}](chunk *WriteGuard[P, T], members []P) {
	member := make(map[P]bool, len(members))
	for _, p := range members {
		member[p] = true
	}
	for _, p := range members {
		pt, err := chunk.GetMut(p)
		if err != nil {
			continue
		}
		ppt := PT(pt)
		for _, q := range point.Neighbours(p) {
			if !member[q] {
				continue
			}
			qt, err := chunk.GetMut(q)
			if err != nil {
				continue
			}
			ppt.AddEdge(q)
			PT(qt).AddEdge(p)
		}
	}
}
