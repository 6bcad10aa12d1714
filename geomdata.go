package octree

// GeometryData materializes center/extent (spec §4.5): the cell center
// and per-axis full side length of every node, reconstructed top-down from the
// root independently of the builder's private tracking fields. It is
// idempotent; a no-op after the first call.
//
// Each level depends only on the strictly coarser level above it, so
// once a level is computed, its nodes' children can be derived
// concurrently (spec §5); GeometryData uses the tree's configured
// worker pool to do so.
func (t *Tree) GeometryData() {
	if t.haveGeometry {
		return
	}

	total := t.NumNodes()
	center := make([][]float64, total)
	extent := make([][]float64, total)

	center[0] = t.rootCenter
	extent[0] = t.rootExtent

	for level := 0; level < t.depth; level++ {
		lvlStart := t.lvlOff[level+1]
		lvlEnd := t.lvlOff[level+2]
		width := lvlEnd - lvlStart

		t.parallelFor(width, func(i int) {
			k := lvlStart + i
			p := t.parent[k]

			ctr := make([]float64, t.dim)
			childCenter(center[p], extent[p], t.octantMask[k], ctr)
			ext := make([]float64, t.dim)
			childExtent(extent[p], ext)

			center[k] = ctr
			extent[k] = ext
		})
	}

	t.center = center
	t.extent = extent
	t.haveGeometry = true
}

// Center returns node k's cell center. Auto-invokes GeometryData.
func (t *Tree) Center(k int) []float64 {
	t.GeometryData()
	return t.center[k]
}

// Extent returns node k's per-axis full side length. Auto-invokes GeometryData.
func (t *Tree) Extent(k int) []float64 {
	t.GeometryData()
	return t.extent[k]
}
