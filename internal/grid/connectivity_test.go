package grid

import (
	"testing"

	"gridcore/internal/lock"
	"gridcore/internal/point"
	"gridcore/internal/store"
)

func TestConnectivityLinksAdjacentPassableTilesSymmetrically(t *testing.T) {
	s := store.New[point.Point2D, testTile](4)
	l := lock.New[point.Point2D]()
	core := point.ToCube(point.Point2D{}, 4)
	umbra := point.Expand(core, 1)

	lg := l.Write([]point.Rect[point.Point2D]{umbra})
	defer lg.Release()
	wg := newWriteGuard(s, []point.Rect[point.Point2D]{umbra}, lg)

	for _, p := range []point.Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}} {
		tile, err := wg.GetMut(p)
		if err != nil {
			t.Fatalf("GetMut(%v): %v", p, err)
		}
		tile.SetPassable(true)
	}

	conn := Connectivity[point.Point2D, testTile, *testTile]{}
	conn.Generate(wg, core, umbra)

	a, _ := wg.Get(point.Point2D{X: 0, Y: 0})
	b, _ := wg.Get(point.Point2D{X: 1, Y: 0})
	c, _ := wg.Get(point.Point2D{X: 1, Y: 1})

	if _, ok := a.edges[point.Point2D{X: 1, Y: 0}]; !ok {
		t.Fatalf("expected edge (0,0)->(1,0)")
	}
	if _, ok := b.edges[point.Point2D{X: 0, Y: 0}]; !ok {
		t.Fatalf("expected reciprocal edge (1,0)->(0,0)")
	}
	if _, ok := b.edges[point.Point2D{X: 1, Y: 1}]; !ok {
		t.Fatalf("expected edge (1,0)->(1,1)")
	}
	if _, ok := c.edges[point.Point2D{X: 0, Y: 0}]; ok {
		t.Fatalf("(1,1) and (0,0) are not orthogonally adjacent, no edge expected")
	}
}

func TestConnectivityWritesIntoUmbraAcrossChunkBoundary(t *testing.T) {
	s := store.New[point.Point2D, testTile](4)
	l := lock.New[point.Point2D]()
	core := point.ToCube(point.Point2D{}, 4)
	umbra := point.Expand(core, 1)

	lg := l.Write([]point.Rect[point.Point2D]{umbra})
	defer lg.Release()
	wg := newWriteGuard(s, []point.Rect[point.Point2D]{umbra}, lg)

	edge, _ := wg.GetMut(point.Point2D{X: 3, Y: 0})
	edge.SetPassable(true)
	outside, _ := wg.GetMut(point.Point2D{X: 4, Y: 0})
	outside.SetPassable(true)

	conn := Connectivity[point.Point2D, testTile, *testTile]{}
	conn.Generate(wg, core, umbra)

	got, _ := wg.Get(point.Point2D{X: 4, Y: 0})
	if _, ok := got.edges[point.Point2D{X: 3, Y: 0}]; !ok {
		t.Fatalf("expected umbra tile (4,0) to receive a back-edge to core tile (3,0)")
	}
}
