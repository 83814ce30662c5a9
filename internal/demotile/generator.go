package demotile

import (
	"math/rand"

	"gridcore/internal/grid"
	"gridcore/internal/point"
)

// SeedPassability stands in for a real noise-backed terrain pass: it
// marks each core tile passable with probability Density, using a
// deterministic per-tile seed hashed from the tile's coordinates and
// Seed, so the same chunk always generates the same layout regardless
// of generation order. Real deployments would
// replace this with an actual noise source; the hashing scheme here is
// adapted from the teacher's value-noise hash, trimmed to a single
// coin flip per tile instead of a continuous height field.
type SeedPassability struct {
	Seed    int64
	Density float64
}

func (g SeedPassability) Generate(chunk *grid.WriteGuard[point.Point2D, Tile], core, umbra point.Rect[point.Point2D]) {
	density := g.Density
	if density <= 0 {
		density = 0.55
	}
	for _, p := range point.PointsInRegion(core) {
		rng := rand.New(rand.NewSource(hash2(p.X, p.Y, g.Seed)))
		t, err := chunk.GetMut(p)
		if err != nil {
			continue
		}
		t.SetPassable(rng.Float64() < density)
	}
}

func hash2(x, y int, seed int64) int64 {
	h := uint32(x*374761393 + y*668265263 + int(seed))
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)
	return int64(h)
}
