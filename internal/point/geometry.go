package point

// Overlap reports whether a and b intersect, per-axis, under the
// half-open [Lo, Hi) convention.
func Overlap[P Space[P]](a, b Rect[P]) bool {
	aLo, aHi := a.Lo.Axes(), a.Hi.Axes()
	bLo, bHi := b.Lo.Axes(), b.Hi.Axes()
	for i := range aLo {
		if aLo[i] >= bHi[i] || bLo[i] >= aHi[i] {
			return false
		}
	}
	return true
}

// Contained reports whether p lies inside r under the half-open
// convention.
func Contained[P Space[P]](p P, r Rect[P]) bool {
	pAxes := p.Axes()
	loAxes := r.Lo.Axes()
	hiAxes := r.Hi.Axes()
	for i := range pAxes {
		if pAxes[i] < loAxes[i] || pAxes[i] >= hiAxes[i] {
			return false
		}
	}
	return true
}

// Expand grows r by margin on every side of every axis. margin may be
// zero (a no-op) or negative (shrink), though the grid core only ever
// grows.
func Expand[P Space[P]](r Rect[P], margin int) Rect[P] {
	loAxes := r.Lo.Axes()
	hiAxes := r.Hi.Axes()
	newLo := make([]int, len(loAxes))
	newHi := make([]int, len(hiAxes))
	for i := range loAxes {
		newLo[i] = loAxes[i] - margin
		newHi[i] = hiAxes[i] + margin
	}
	var zero P
	return Rect[P]{Lo: zero.FromAxes(newLo), Hi: zero.FromAxes(newHi)}
}

// ToCube expands a single point to the cube rectangle [p, p+size) on
// every axis; size 1 gives the single-tile cube.
func ToCube[P Space[P]](p P, size int) Rect[P] {
	axes := p.Axes()
	hiAxes := make([]int, len(axes))
	for i, v := range axes {
		hiAxes[i] = v + size
	}
	return Rect[P]{Lo: p, Hi: p.FromAxes(hiAxes)}
}

// floorDiv is integer division that rounds toward negative infinity,
// so chunk indexing is correct for negative coordinates (a tile at
// x=-1 with chunk size 10 belongs to chunk origin -10).
func floorDiv(value, size int) int {
	if size <= 0 {
		return 0
	}
	if value >= 0 {
		return value / size
	}
	return -((-value-1)/size) - 1
}

func floorMod(value, size int) int {
	m := value % size
	if m < 0 {
		m += size
	}
	return m
}

// ChunkIndex locates the chunk bucket a point falls into for a
// uniform chunk size, and the point's row-major offset within that
// chunk's dense array. The offset is accumulated from the last axis to
// the first, so the last axis is the most significant and the first
// varies fastest: for a 2-D point with axes (X, Y) this is Y*size+X,
// matching the spec's worked example for negative coordinates.
func ChunkIndex[P Space[P]](p P, size int) (origin P, offset int) {
	axes := p.Axes()
	originAxes := make([]int, len(axes))
	offsets := make([]int, len(axes))
	for i, v := range axes {
		originAxes[i] = floorDiv(v, size) * size
		offsets[i] = floorMod(v, size)
	}
	flat := 0
	for i := len(offsets) - 1; i >= 0; i-- {
		flat = flat*size + offsets[i]
	}
	var zero P
	return zero.FromAxes(originAxes), flat
}

// ChunksInRegion enumerates every chunk rectangle (of the given
// uniform size) that intersects r, ascending by major axis (axis 0)
// then minor (the last axis varies fastest). Duplicates never occur
// because each chunk bucket is visited exactly once.
func ChunksInRegion[P Space[P]](r Rect[P], size int) []Rect[P] {
	loAxes := r.Lo.Axes()
	hiAxes := r.Hi.Axes()
	n := len(loAxes)
	for i := 0; i < n; i++ {
		if hiAxes[i] <= loAxes[i] {
			return nil
		}
	}

	lowChunk := make([]int, n)
	highChunk := make([]int, n)
	for i := 0; i < n; i++ {
		lowChunk[i] = floorDiv(loAxes[i], size)
		highChunk[i] = floorDiv(hiAxes[i]-1, size)
	}

	var zero P
	var rects []Rect[P]
	counters := append([]int(nil), lowChunk...)
	for {
		originAxes := make([]int, n)
		hiOut := make([]int, n)
		for i := 0; i < n; i++ {
			originAxes[i] = counters[i] * size
			hiOut[i] = originAxes[i] + size
		}
		rects = append(rects, Rect[P]{Lo: zero.FromAxes(originAxes), Hi: zero.FromAxes(hiOut)})

		idx := n - 1
		for idx >= 0 {
			counters[idx]++
			if counters[idx] <= highChunk[idx] {
				break
			}
			counters[idx] = lowChunk[idx]
			idx--
		}
		if idx < 0 {
			break
		}
	}
	return rects
}

// PointsInRegion enumerates every point contained in r, in
// lexicographic order over Axes().
func PointsInRegion[P Space[P]](r Rect[P]) []P {
	loAxes := r.Lo.Axes()
	hiAxes := r.Hi.Axes()
	n := len(loAxes)
	for i := 0; i < n; i++ {
		if hiAxes[i] <= loAxes[i] {
			return nil
		}
	}

	var zero P
	var pts []P
	counters := append([]int(nil), loAxes...)
	for {
		pts = append(pts, zero.FromAxes(append([]int(nil), counters...)))

		idx := n - 1
		for idx >= 0 {
			counters[idx]++
			if counters[idx] < hiAxes[idx] {
				break
			}
			counters[idx] = loAxes[idx]
			idx--
		}
		if idx < 0 {
			break
		}
	}
	return pts
}

// Neighbours enumerates the 2N orthogonal unit-offset neighbours of p,
// in the fixed order {(-1 on axis 0), (+1 on axis 0), (-1 on axis 1),
// (+1 on axis 1), ...}.
func Neighbours[P Space[P]](p P) []P {
	axes := p.Axes()
	n := len(axes)
	var zero P
	out := make([]P, 0, 2*n)
	for i := 0; i < n; i++ {
		minus := append([]int(nil), axes...)
		minus[i]--
		out = append(out, zero.FromAxes(minus))

		plus := append([]int(nil), axes...)
		plus[i]++
		out = append(out, zero.FromAxes(plus))
	}
	return out
}
