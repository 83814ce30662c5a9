package grid

import (
	"fmt"

	"gridcore/internal/lock"
	"gridcore/internal/point"
	"gridcore/internal/store"
)

// ReadGuard is a region-scoped read accessor: it holds a shared region
// lock acquisition for its lifetime and exposes tile reads restricted
// to that region. Close must be called exactly once, normally via
// defer right after acquisition — Go has no destructors, so Close is
// this guard's equivalent of the spec's "released at the end of their
// lexical scope".
type ReadGuard[P point.Space[P], T any] struct {
	store     *store.Store[P, T]
	regions   []point.Rect[P]
	lockGuard *lock.Guard[P]
}

func newReadGuard[P point.Space[P], T any](s *store.Store[P, T], regions []point.Rect[P], lg *lock.Guard[P]) *ReadGuard[P, T] {
	return &ReadGuard[P, T]{store: s, regions: regions, lockGuard: lg}
}

func contains[P point.Space[P]](regions []point.Rect[P], p P) bool {
	for _, r := range regions {
		if point.Contained(p, r) {
			return true
		}
	}
	return false
}

// Get returns the tile at p. It fails with ErrOutOfRegion if p is not
// contained in the region this guard locked.
func (g *ReadGuard[P, T]) Get(p P) (T, error) {
	var zero T
	if !contains(g.regions, p) {
		return zero, fmt.Errorf("%w: %v", ErrOutOfRegion, p)
	}
	t, _ := g.store.Get(p)
	return t, nil
}

// Close releases the underlying region lock acquisition.
func (g *ReadGuard[P, T]) Close() {
	g.lockGuard.Release()
}

// WriteGuard is a region-scoped write accessor: it holds an exclusive
// region lock acquisition for its lifetime and exposes reads, writes,
// and ordered enumeration restricted to that region.
type WriteGuard[P point.Space[P], T any] struct {
	store     *store.Store[P, T]
	regions   []point.Rect[P]
	lockGuard *lock.Guard[P]
}

func newWriteGuard[P point.Space[P], T any](s *store.Store[P, T], regions []point.Rect[P], lg *lock.Guard[P]) *WriteGuard[P, T] {
	return &WriteGuard[P, T]{store: s, regions: regions, lockGuard: lg}
}

// Get returns the tile at p, or ErrOutOfRegion if p is outside the
// locked region.
func (g *WriteGuard[P, T]) Get(p P) (T, error) {
	var zero T
	if !contains(g.regions, p) {
		return zero, fmt.Errorf("%w: %v", ErrOutOfRegion, p)
	}
	t, _ := g.store.Get(p)
	return t, nil
}

// GetMut returns a pointer to the tile at p, materialising its
// containing chunk with default tiles first if needed. It fails with
// ErrOutOfRegion if p is outside the locked region.
func (g *WriteGuard[P, T]) GetMut(p P) (*T, error) {
	if !contains(g.regions, p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRegion, p)
	}
	if t, ok := g.store.GetMut(p); ok {
		return t, nil
	}
	var zero T
	g.store.Set(p, zero)
	t, _ := g.store.GetMut(p)
	return t, nil
}

// Set writes t at p. It fails with ErrOutOfRegion if p is outside the
// locked region.
func (g *WriteGuard[P, T]) Set(p P, t T) error {
	if !contains(g.regions, p) {
		return fmt.Errorf("%w: %v", ErrOutOfRegion, p)
	}
	g.store.Set(p, t)
	return nil
}

// Enumerate lists every point in the guard's region(s), in
// lexicographic order per region.
func (g *WriteGuard[P, T]) Enumerate() []P {
	var pts []P
	for _, r := range g.regions {
		pts = append(pts, point.PointsInRegion(r)...)
	}
	return pts
}

// EnumerateMut calls fn for every point in the guard's region(s), with
// a pointer to its tile, materialising chunks on demand exactly as
// GetMut does.
func (g *WriteGuard[P, T]) EnumerateMut(fn func(P, *T)) {
	for _, p := range g.Enumerate() {
		t, err := g.GetMut(p)
		if err != nil {
			// Enumerate only ever yields points from g.regions, so
			// this cannot happen.
			continue
		}
		fn(p, t)
	}
}

// Close releases the underlying region lock acquisition.
func (g *WriteGuard[P, T]) Close() {
	g.lockGuard.Release()
}
