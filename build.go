package octree

// construct runs the breadth-first adaptive build of spec §4.3. It
// initializes the root and then, level by level, decides which nodes
// to subdivide and appends their children to the BFS arrays.
func (t *Tree) construct() {
	n := t.n
	t.xi = make([]int, n)
	for i := range t.xi {
		t.xi[i] = i
	}

	t.parent = []int{0}
	t.xiOff = []int{0}
	t.xiLen = []int{n}
	t.octantMask = []uint32{0}
	t.buildCenter = [][]float64{t.rootCenter}
	t.buildExtent = [][]float64{t.rootExtent}
	t.lvlOff = []int{0, 1}
	t.depth = 0

	for level := 0; ; level++ {
		lvlStart, lvlEnd := t.lvlOff[level], t.lvlOff[level+1]
		width := lvlEnd - lvlStart

		eligible := make([]bool, width)
		anyAdaptive := false
		for i := 0; i < width; i++ {
			k := lvlStart + i
			if t.adaptiveEligible(k, level) {
				eligible[i] = true
				anyAdaptive = true
			}
		}

		if t.adap == Uniform && anyAdaptive {
			for i := 0; i < width; i++ {
				if !eligible[i] {
					k := lvlStart + i
					eligible[i] = t.nonTrivial(k, level)
				}
			}
		}

		anySubdivide := false
		for _, e := range eligible {
			if e {
				anySubdivide = true
				break
			}
		}
		if !anySubdivide {
			break
		}

		newTotal := lvlEnd
		for i := 0; i < width; i++ {
			if !eligible[i] {
				continue
			}
			newTotal += t.subdivide(lvlStart + i)
		}
		if newTotal == lvlEnd {
			// every eligible node retained its entire range (element
			// modes): nothing actually subdivided, so there is no new
			// level to record.
			break
		}
		t.lvlOff = append(t.lvlOff, newTotal)
		t.depth = level + 1
	}
}

// adaptiveEligible implements the per-mode-independent adaptive
// subdivision predicate of spec §4.3.
func (t *Tree) adaptiveEligible(k, level int) bool {
	if t.xiLen[k] <= t.occ {
		return false
	}
	if t.lvlMax >= 0 && level >= t.lvlMax {
		return false
	}
	return hasPositiveExtent(t.buildExtent[k])
}

// nonTrivial is the weaker predicate uniform mode uses to force every
// non-empty, non-degenerate node at a level to subdivide once any node
// at that level would, under adaptiveEligible (spec §4.3).
func (t *Tree) nonTrivial(k, level int) bool {
	if t.xiLen[k] == 0 {
		return false
	}
	if t.lvlMax >= 0 && level >= t.lvlMax {
		return false
	}
	return hasPositiveExtent(t.buildExtent[k])
}

func hasPositiveExtent(extent []float64) bool {
	for _, e := range extent {
		if e > 0 {
			return true
		}
	}
	return false
}

// subdivide partitions node k's range and appends one new node per
// non-empty octant, in ascending mask order (spec §4.3, §4.4). It
// returns the number of children appended. Node k's own xiOff/xiLen is
// left unchanged: children occupy contiguous sub-ranges nested inside
// it, and any retained objects simply remain in the portion of k's
// range that no child claims.
func (t *Tree) subdivide(k int) int {
	parentOff, parentLen := t.xiOff[k], t.xiLen[k]
	parentCenter, parentExtent := t.buildCenter[k], t.buildExtent[k]

	_, blocks := partitionRange(t.xi, t.x, t.siz, t.mode, parentCenter, parentExtent, parentOff, parentLen)

	childExt := make([]float64, t.dim)
	childExtent(parentExtent, childExt)

	for _, b := range blocks {
		ctr := make([]float64, t.dim)
		childCenter(parentCenter, parentExtent, b.mask, ctr)
		ext := make([]float64, t.dim)
		copy(ext, childExt)

		t.parent = append(t.parent, k)
		t.xiOff = append(t.xiOff, b.off)
		t.xiLen = append(t.xiLen, b.len)
		t.octantMask = append(t.octantMask, b.mask)
		t.buildCenter = append(t.buildCenter, ctr)
		t.buildExtent = append(t.buildExtent, ext)
	}
	return len(blocks)
}
