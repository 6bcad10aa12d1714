package octree

import (
	"fmt"
	"sort"

	set3 "github.com/TomTonic/Set3"
)

// selfAdjacent reports whether node k's cell touches its own periodic
// image: along every periodic axis, the cell must span at least one full
// period (spec §4.6, "a node can be its own neighbor across the wrap").
// Non-periodic construction never produces a self-neighbor.
func (t *Tree) selfAdjacent(k int, per []bool, period []float64) bool {
	any := false
	ext := t.extent[k]
	for j, p := range per {
		if !p {
			continue
		}
		any = true
		if period[j] <= 0 || period[j] > ext[j] {
			return false
		}
	}
	return any
}

// adjacent reports whether two distinct nodes' cells touch or overlap
// under the active periods (spec §4.1, §4.6): an axis-aligned box test,
// using minimum-image displacement along periodic axes.
func (t *Tree) adjacent(a, b int, per []bool, period []float64) bool {
	ca, ea := t.center[a], t.extent[a]
	cb, eb := t.center[b], t.extent[b]
	for j := range ca {
		if !axisOverlap(ca[j], ea[j]/2, cb[j], eb[j]/2, period[j], per[j]) {
			return false
		}
	}
	return true
}

// NeighborData materializes nborp/nbori (spec §4.6) for the given
// per-axis periodicity vector. Idempotent for a given per; rebuilding
// with a different per replaces the previous result. A nil per means
// no periodicity along any axis.
func (t *Tree) NeighborData(per []bool) error {
	if per == nil {
		per = make([]bool, t.dim)
	} else if len(per) != t.dim {
		return invalidInputError(ErrPeriodicityDims, fmt.Sprintf("got %d, want %d", len(per), t.dim))
	}
	if t.haveNeighbors && boolSliceEqual(t.per, per) {
		return nil
	}
	t.ChildData()
	t.GeometryData()

	period := make([]float64, t.dim)
	for j, p := range per {
		if p {
			period[j] = t.rootExtent[j]
		}
	}

	total := t.NumNodes()
	nbors := make([][]int, total)
	nbors[0] = t.nodeNeighbors(0, nil, per, period)

	for level := 0; level < t.depth; level++ {
		lvlStart := t.lvlOff[level+1]
		lvlEnd := t.lvlOff[level+2]
		width := lvlEnd - lvlStart

		t.parallelFor(width, func(i int) {
			a := lvlStart + i
			p := t.parent[a]
			nbors[a] = t.nodeNeighbors(a, nbors[p], per, period)
		})
	}

	ptr := make([]int, total+1)
	for k := 0; k < total; k++ {
		ptr[k+1] = ptr[k] + len(nbors[k])
	}
	idx := make([]int, ptr[total])
	for k := 0; k < total; k++ {
		copy(idx[ptr[k]:ptr[k+1]], nbors[k])
	}

	t.per = per
	t.neighborPtr = ptr
	t.neighborIdx = idx
	t.haveNeighbors = true
	return nil
}

// nodeNeighbors enumerates the neighbors of node a given its parent's
// already-materialized neighbor list (spec §4.6 enumeration algorithm):
// same-level descendants of parent's neighbors, a's siblings, and, in
// element modes, the parent's neighbors that were never subdivided and
// so remain valid coarser neighbors of a.
func (t *Tree) nodeNeighbors(a int, parentNbors []int, per []bool, period []float64) []int {
	seen := set3.Empty[int]()
	var out []int

	add := func(c int) {
		if seen.Contains(c) {
			return
		}
		seen.Add(c)
		out = append(out, c)
	}

	if t.selfAdjacent(a, per, period) {
		add(a)
	}

	if a != 0 {
		p := t.parent[a]
		for _, sib := range t.Children(p) {
			if sib != a && t.adjacent(a, sib, per, period) {
				add(sib)
			}
		}
		for _, q := range parentNbors {
			children := t.Children(q)
			if len(children) > 0 {
				for _, c := range children {
					if c != a && !seen.Contains(c) && t.adjacent(a, c, per, period) {
						add(c)
					}
				}
			} else if t.mode != Point {
				if !seen.Contains(q) && t.adjacent(a, q, per, period) {
					add(q)
				}
			}
		}
	}

	sort.Ints(out)
	return out
}

// Neighbors returns the neighbor node indices of k in ascending order.
// Auto-invokes NeighborData with no periodicity if it has not been
// materialized yet.
func (t *Tree) Neighbors(k int) []int {
	if !t.haveNeighbors {
		_ = t.NeighborData(nil)
	}
	return t.neighborIdx[t.neighborPtr[k]:t.neighborPtr[k+1]]
}

func boolSliceEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
