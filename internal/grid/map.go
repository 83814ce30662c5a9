package grid

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"gridcore/internal/lock"
	"gridcore/internal/point"
	"gridcore/internal/store"
)

// Map binds the region lock, the chunk store, and the generator
// pipeline into the public grid facade: generation plus reader/writer
// access to arbitrary rectangular regions.
type Map[P point.Space[P], T any] struct {
	chunkSize int
	lock      *lock.RegionLock[P]
	store     *store.Store[P, T]

	pipelineMu sync.Mutex
	generators []Generator[P, T]
	generated  map[P]bool
	dirty      []P
}

// New creates an empty Map. generators run, in order, on every chunk
// the first time any request touches it.
func New[P point.Space[P], T any](generators []Generator[P, T], chunkSize int) *Map[P, T] {
	return &Map[P, T]{
		chunkSize:  chunkSize,
		lock:       lock.New[P](),
		store:      store.New[P, T](chunkSize),
		generators: append([]Generator[P, T](nil), generators...),
		generated:  make(map[P]bool),
	}
}

// ChunkSize reports the uniform chunk edge length this map was created
// with.
func (m *Map[P, T]) ChunkSize() int {
	return m.chunkSize
}

// MaybeGenerate materialises and runs the generator pipeline over
// every not-yet-generated chunk overlapping region. It is idempotent:
// already-generated chunks are skipped. At most one goroutine ever
// runs a given chunk's pipeline, because each chunk is generated under
// an exclusive lock on its own umbra.
func (m *Map[P, T]) MaybeGenerate(region point.Rect[P]) {
	for _, cr := range point.ChunksInRegion(region, m.chunkSize) {
		m.generateChunk(cr.Lo)
	}
}

// GenerateRegions runs MaybeGenerate over a batch of (expected
// disjoint) regions concurrently, bounded by concurrency simultaneous
// in-flight chunk generations. A concurrency of 0 runs every region's
// generation concurrently with no bound. It returns ctx.Err() if ctx
// is cancelled before every region has been dispatched.
func (m *Map[P, T]) GenerateRegions(ctx context.Context, regions []point.Rect[P], concurrency int) error {
	g, gctx := errgroup.WithContext(ctx)
	if concurrency <= 0 {
		concurrency = len(regions)
	}
	if concurrency <= 0 {
		return nil
	}
	sem := make(chan struct{}, concurrency)

	for _, r := range regions {
		r := r
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			m.MaybeGenerate(r)
			return nil
		})
	}
	return g.Wait()
}

func (m *Map[P, T]) generateChunk(origin P) {
	m.pipelineMu.Lock()
	done := m.generated[origin]
	m.pipelineMu.Unlock()
	if done {
		return
	}

	core := point.ToCube(origin, m.chunkSize)
	umbra := point.Expand(core, 1)

	lg := m.lock.Write([]point.Rect[P]{umbra})
	defer lg.Release()

	m.pipelineMu.Lock()
	if m.generated[origin] {
		m.pipelineMu.Unlock()
		return
	}
	generators := append([]Generator[P, T](nil), m.generators...)
	m.pipelineMu.Unlock()

	m.store.ResetChunk(origin)
	wg := newWriteGuard[P, T](m.store, []point.Rect[P]{umbra}, lg)

	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("grid: generator panic on chunk %v: %v", origin, r)
				panic(r)
			}
		}()
		for _, gen := range generators {
			gen.Generate(wg, core, umbra)
		}
	}()

	m.pipelineMu.Lock()
	m.generated[origin] = true
	m.dirty = append(m.dirty, origin)
	m.pipelineMu.Unlock()
}

// Get locks the single-tile cube [p, p+1) for reading and returns a
// guard over it. It fails with ErrUngeneratedAccess if the chunk
// containing p has never been generated.
func (m *Map[P, T]) Get(p P) (*ReadGuard[P, T], error) {
	cube := point.ToCube(p, 1)
	lg := m.lock.Read([]point.Rect[P]{cube})
	if origin, _ := point.ChunkIndex(p, m.chunkSize); !m.Generated(origin) {
		lg.Release()
		return nil, fmt.Errorf("%w: %v", ErrUngeneratedAccess, p)
	}
	return newReadGuard(m.store, []point.Rect[P]{cube}, lg), nil
}

// GetMut locks the single-tile cube [p, p+1) for writing and returns a
// guard over it. It fails with ErrUngeneratedAccess if the chunk
// containing p has never been generated.
func (m *Map[P, T]) GetMut(p P) (*WriteGuard[P, T], error) {
	cube := point.ToCube(p, 1)
	lg := m.lock.Write([]point.Rect[P]{cube})
	if origin, _ := point.ChunkIndex(p, m.chunkSize); !m.Generated(origin) {
		lg.Release()
		return nil, fmt.Errorf("%w: %v", ErrUngeneratedAccess, p)
	}
	return newWriteGuard(m.store, []point.Rect[P]{cube}, lg), nil
}

// Region locks r for reading and returns a guard over it, without
// requiring that any chunk it overlaps has been generated — reads of
// ungenerated tiles simply observe their zero value.
func (m *Map[P, T]) Region(r point.Rect[P]) *ReadGuard[P, T] {
	lg := m.lock.Read([]point.Rect[P]{r})
	return newReadGuard(m.store, []point.Rect[P]{r}, lg)
}

// RegionMut locks r for writing and returns a guard over it.
func (m *Map[P, T]) RegionMut(r point.Rect[P]) *WriteGuard[P, T] {
	lg := m.lock.Write([]point.Rect[P]{r})
	return newWriteGuard(m.store, []point.Rect[P]{r}, lg)
}

// DrainDirty atomically takes and returns the current dirty list,
// leaving it empty. The returned slice preserves generation order.
func (m *Map[P, T]) DrainDirty() []P {
	m.pipelineMu.Lock()
	defer m.pipelineMu.Unlock()
	out := m.dirty
	m.dirty = nil
	return out
}

// Generated reports whether the chunk at origin has completed
// generation.
func (m *Map[P, T]) Generated(origin P) bool {
	m.pipelineMu.Lock()
	defer m.pipelineMu.Unlock()
	return m.generated[origin]
}
