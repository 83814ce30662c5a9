// Package lock implements the region lock: a multi-reader /
// multi-writer lock whose units of exclusion are axis-aligned
// rectangular regions of point-space, with parking and fair handoff
// on release.
package lock

import (
	"sync"

	"gridcore/internal/point"
)

// Key identifies one acquisition (held or parked). Keys are assigned
// monotonically and are only meaningful within a single RegionLock.
type Key uint64

type holder[P point.Space[P]] struct {
	key     Key
	regions []point.Rect[P]
	waiters []*waiter
}

type waiter struct {
	ready chan struct{}
	woken bool
}

func (w *waiter) wake() {
	if !w.woken {
		w.woken = true
		close(w.ready)
	}
}

// RegionLock guards one point-space. All of its exported methods are
// safe to call concurrently.
type RegionLock[P point.Space[P]] struct {
	mu      sync.Mutex
	nextKey Key
	reads   map[Key]*holder[P]
	writes  map[Key]*holder[P]
	pending int
}

// New creates an empty RegionLock.
func New[P point.Space[P]]() *RegionLock[P] {
	return &RegionLock[P]{
		reads:  make(map[Key]*holder[P]),
		writes: make(map[Key]*holder[P]),
	}
}

// Guard is a held acquisition. Release must be called exactly once,
// normally via defer immediately after a successful acquisition.
type Guard[P point.Space[P]] struct {
	lock    *RegionLock[P]
	key     Key
	regions []point.Rect[P]
	write   bool
	done    bool
}

// Regions reports the rectangles this guard holds.
func (g *Guard[P]) Regions() []point.Rect[P] {
	return g.regions
}

// Release gives up the acquisition and wakes any waiters it was
// blocking. Calling Release twice is a programmer error; the second
// call is a no-op rather than a panic, since the spec requires no
// panics under correct use but does call a double-unlock a
// programmer error (i.e. undefined behaviour to rely on).
func (g *Guard[P]) Release() {
	if g.done {
		return
	}
	g.done = true
	g.lock.release(g.key, g.write)
}

func anyOverlap[P point.Space[P]](a, b []point.Rect[P]) bool {
	for _, ra := range a {
		for _, rb := range b {
			if point.Overlap(ra, rb) {
				return true
			}
		}
	}
	return false
}

// conflicts returns the active holders (from the given maps) whose
// regions overlap any of regions.
func conflicts[P point.Space[P]](regions []point.Rect[P], maps ...map[Key]*holder[P]) []*holder[P] {
	var out []*holder[P]
	for _, m := range maps {
		for _, h := range m {
			if anyOverlap(regions, h.regions) {
				out = append(out, h)
			}
		}
	}
	return out
}

func (l *RegionLock[P]) scanRead(regions []point.Rect[P]) []*holder[P] {
	return conflicts(regions, l.writes)
}

func (l *RegionLock[P]) scanWrite(regions []point.Rect[P]) []*holder[P] {
	return conflicts(regions, l.writes, l.reads)
}

func (l *RegionLock[P]) maybeResetCounter() {
	if len(l.reads) == 0 && len(l.writes) == 0 && l.pending == 0 {
		l.nextKey = 0
	}
}

// acquire implements the NEW -> (conflict? -> PARKED -> woken -> NEW)
// | (no conflict -> HELD) state machine described in the spec: scan
// for conflicting holders; on conflict, register as a waiter of every
// one of them and park; on wake, retry the scan from the top.
func (l *RegionLock[P]) acquire(regions []point.Rect[P], write bool, scan func([]point.Rect[P]) []*holder[P]) *Guard[P] {
	l.mu.Lock()
	for {
		key := l.nextKey
		l.nextKey++

		held := scan(regions)
		if len(held) == 0 {
			h := &holder[P]{key: key, regions: regions}
			if write {
				l.writes[key] = h
			} else {
				l.reads[key] = h
			}
			l.mu.Unlock()
			return &Guard[P]{lock: l, key: key, regions: regions, write: write}
		}

		w := &waiter{ready: make(chan struct{})}
		for _, h := range held {
			h.waiters = append(h.waiters, w)
		}
		l.pending++
		l.mu.Unlock()

		<-w.ready

		l.mu.Lock()
		l.pending--
	}
}

// tryAcquire is the non-blocking counterpart: it never parks, and
// reports ok=false on the first conflict found.
func (l *RegionLock[P]) tryAcquire(regions []point.Rect[P], write bool, scan func([]point.Rect[P]) []*holder[P]) (*Guard[P], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(scan(regions)) != 0 {
		return nil, false
	}

	key := l.nextKey
	l.nextKey++
	h := &holder[P]{key: key, regions: regions}
	if write {
		l.writes[key] = h
	} else {
		l.reads[key] = h
	}
	return &Guard[P]{lock: l, key: key, regions: regions, write: write}, true
}

func (l *RegionLock[P]) release(key Key, write bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var h *holder[P]
	if write {
		h = l.writes[key]
		delete(l.writes, key)
	} else {
		h = l.reads[key]
		delete(l.reads, key)
	}
	if h == nil {
		return
	}
	for _, w := range h.waiters {
		w.wake()
	}
	l.maybeResetCounter()
}

// Read blocks until a shared acquisition of regions can be granted:
// it conflicts only with active writers whose regions overlap.
func (l *RegionLock[P]) Read(regions []point.Rect[P]) *Guard[P] {
	return l.acquire(regions, false, l.scanRead)
}

// TryRead attempts a non-blocking shared acquisition, returning
// ok=false on conflict instead of parking.
func (l *RegionLock[P]) TryRead(regions []point.Rect[P]) (*Guard[P], bool) {
	return l.tryAcquire(regions, false, l.scanRead)
}

// Write blocks until an exclusive acquisition of regions can be
// granted: it conflicts with any active writer or reader whose
// regions overlap.
func (l *RegionLock[P]) Write(regions []point.Rect[P]) *Guard[P] {
	return l.acquire(regions, true, l.scanWrite)
}

// TryWrite attempts a non-blocking exclusive acquisition.
func (l *RegionLock[P]) TryWrite(regions []point.Rect[P]) (*Guard[P], bool) {
	return l.tryAcquire(regions, true, l.scanWrite)
}
