package octree

import (
	"sort"

	set3 "github.com/TomTonic/Set3"
)

// InteractionData materializes ilstp/ilsti (spec §4.7): for each node,
// the children of its parent's neighbors (including the parent itself)
// that are not themselves neighbors of the node. In element modes, a
// parent-neighbor that was never subdivided is included directly
// instead of being expanded into children, mirroring the neighbor
// finder's asymmetric coarser-neighbor rule. Requires neighbor data,
// auto-invoked with no periodicity if absent. Idempotent.
func (t *Tree) InteractionData() {
	if t.haveInteractions {
		return
	}
	if !t.haveNeighbors {
		_ = t.NeighborData(nil)
	}
	t.ChildData()

	total := t.NumNodes()
	ilists := make([][]int, total)

	for level := 0; level < t.depth; level++ {
		lvlStart := t.lvlOff[level+1]
		lvlEnd := t.lvlOff[level+2]
		width := lvlEnd - lvlStart

		t.parallelFor(width, func(i int) {
			a := lvlStart + i
			ilists[a] = t.nodeInteractionList(a)
		})
	}

	ptr := make([]int, total+1)
	for k := 0; k < total; k++ {
		ptr[k+1] = ptr[k] + len(ilists[k])
	}
	idx := make([]int, ptr[total])
	for k := 0; k < total; k++ {
		copy(idx[ptr[k]:ptr[k+1]], ilists[k])
	}

	t.ilistPtr = ptr
	t.ilistIdx = idx
	t.haveInteractions = true
}

func (t *Tree) nodeInteractionList(a int) []int {
	p := t.parent[a]
	neighA := t.Neighbors(a)
	isNeighbor := func(c int) bool {
		i := sort.SearchInts(neighA, c)
		return i < len(neighA) && neighA[i] == c
	}

	qs := make([]int, 0, len(t.Neighbors(p))+1)
	qs = append(qs, p)
	qs = append(qs, t.Neighbors(p)...)

	seen := set3.Empty[int]()
	var out []int
	for _, q := range qs {
		children := t.Children(q)
		if len(children) > 0 {
			for _, c := range children {
				if c == a || seen.Contains(c) || isNeighbor(c) {
					continue
				}
				seen.Add(c)
				out = append(out, c)
			}
		} else if t.mode != Point {
			if seen.Contains(q) || isNeighbor(q) {
				continue
			}
			seen.Add(q)
			out = append(out, q)
		}
	}

	sort.Ints(out)
	return out
}

// InteractionList returns node k's interaction list in ascending order.
// Auto-invokes InteractionData.
func (t *Tree) InteractionList(k int) []int {
	t.InteractionData()
	return t.ilistIdx[t.ilistPtr[k]:t.ilistPtr[k+1]]
}
