package grid

import "gridcore/internal/point"

// Generator consumes a writable chunk view covering a chunk's umbra
// and produces tile state. Implementations must be safe to call from
// any goroutine, though the region lock guarantees at most one
// goroutine ever runs a given chunk's pipeline at a time.
type Generator[P point.Space[P], T any] interface {
	// Generate runs this generator's pass. chunk covers umbra; core is
	// the chunk's own rectangle. Writes inside core are the common
	// case; writes into chunk but outside core are permitted for
	// neighbour-affecting passes (see Connectivity) and are safe
	// because the write lock already covers the whole umbra.
	Generate(chunk *WriteGuard[P, T], core, umbra point.Rect[P])
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc[P point.Space[P], T any] func(chunk *WriteGuard[P, T], core, umbra point.Rect[P])

func (f GeneratorFunc[P, T]) Generate(chunk *WriteGuard[P, T], core, umbra point.Rect[P]) {
	f(chunk, core, umbra)
}

// GeneratorSequence composes a list of generators into one, forwarding
// Generate to each in declared order so later generators observe
// earlier ones' writes.
type GeneratorSequence[P point.Space[P], T any] struct {
	Generators []Generator[P, T]
}

func (s GeneratorSequence[P, T]) Generate(chunk *WriteGuard[P, T], core, umbra point.Rect[P]) {
	for _, g := range s.Generators {
		g.Generate(chunk, core, umbra)
	}
}
