package octree

// ChildData materializes chldp/chld (spec §4.4): for each node, the CSR
// range of its children, in ascending node-index order, which
// coincides with ascending octant-mask order because siblings are
// emitted that way during construction. Idempotent; a no-op after the
// first call.
func (t *Tree) ChildData() {
	if t.haveChildren {
		return
	}

	k := t.NumNodes()
	counts := make([]int, k+1)
	for node := 1; node < k; node++ {
		counts[t.parent[node]]++
	}

	ptr := make([]int, k+1)
	for p := 0; p < k; p++ {
		ptr[p+1] = ptr[p] + counts[p]
	}

	idx := make([]int, ptr[k])
	cursor := make([]int, k)
	copy(cursor, ptr[:k])
	for node := 1; node < k; node++ {
		p := t.parent[node]
		idx[cursor[p]] = node
		cursor[p]++
	}

	t.childPtr = ptr
	t.childIdx = idx
	t.haveChildren = true
}

// Children returns the child node indices of k, in ascending
// octant-mask order. Auto-invokes ChildData.
func (t *Tree) Children(k int) []int {
	t.ChildData()
	return t.childIdx[t.childPtr[k]:t.childPtr[k+1]]
}
