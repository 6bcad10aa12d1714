package octree

// Search maps each query object y[i] (optional radius sizQ[i], ignored
// if sizQ is nil) to its containing node at every level up to mlvl or
// the tree's depth, whichever is smaller (spec §4.8). A negative mlvl
// means unbounded. Requires child and geometry data, auto-invoked if
// absent.
//
// The returned trav is indexed [query][level]; an entry is the
// containing node's index plus one, or zero if the query object does
// not lie fully inside any node at that level (matching the reference
// convention that zero means "no such node"). Once a level is zero,
// every deeper level for that query is zero too. Search on a tree with
// no matching query ever descending is not an error.
func (t *Tree) Search(y [][]float64, sizQ []float64, mlvl int) [][]int {
	t.ChildData()
	t.GeometryData()

	maxLevel := t.depth
	if mlvl >= 0 && mlvl < maxLevel {
		maxLevel = mlvl
	}

	m := len(y)
	trav := make([][]int, m)
	for i := range trav {
		trav[i] = make([]int, maxLevel+1)
	}

	for i := 0; i < m; i++ {
		radius := 0.0
		if sizQ != nil {
			radius = sizQ[i]
		}

		if !contains(t.center[0], t.extent[0], y[i], radius) {
			continue
		}
		trav[i][0] = 1

		cur := 0
		for l := 1; l <= maxLevel; l++ {
			next := -1
			for _, c := range t.Children(cur) {
				if contains(t.center[c], t.extent[c], y[i], radius) {
					next = c
					break
				}
			}
			if next < 0 {
				break
			}
			trav[i][l] = next + 1
			cur = next
		}
	}

	return trav
}
