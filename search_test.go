package octree

import "testing"

func TestSearchSoundness(t *testing.T) {
	tree := buildS1(t)
	y := [][]float64{{0.1}, {0.4}, {0.6}, {0.9}, {0.5}}
	trav := tree.Search(y, nil, -1)

	if len(trav) != len(y) {
		t.Fatalf("trav has %d rows, want %d", len(trav), len(y))
	}

	for i, row := range y[:4] {
		zeroSeen := false
		for l, k := range trav[i] {
			if k == 0 {
				zeroSeen = true
				continue
			}
			if zeroSeen {
				t.Errorf("query %d: non-zero entry %d at level %d after a zero", i, k, l)
			}
			node := k - 1
			if tree.LevelOf(node) != l {
				t.Errorf("query %d level %d: node %d is at level %d", i, l, node, tree.LevelOf(node))
			}
			if !contains(tree.Center(node), tree.Extent(node), row, 0) {
				t.Errorf("query %d level %d: node %d does not contain %v", i, l, node, row)
			}
		}
	}
}

func TestSearchRootCoversAllQueries(t *testing.T) {
	tree := buildS1(t)
	y := [][]float64{{0.1}, {0.9}}
	trav := tree.Search(y, nil, -1)
	for i := range y {
		if trav[i][0] != 1 {
			t.Errorf("query %d: trav[%d][0] = %d, want 1 (root)", i, i, trav[i][0])
		}
	}
}

func TestSearchOutsideDomainIsAllZero(t *testing.T) {
	tree := buildS1(t)
	y := [][]float64{{5.0}}
	trav := tree.Search(y, nil, -1)
	for l, k := range trav[0] {
		if k != 0 {
			t.Errorf("query outside the root cell: trav[0][%d] = %d, want 0", l, k)
		}
	}
}

func TestSearchMlvlCap(t *testing.T) {
	tree := buildS1(t)
	y := [][]float64{{0.1}}
	trav := tree.Search(y, nil, 1)
	if len(trav[0]) != 2 {
		t.Fatalf("trav row length = %d, want 2 for mlvl=1", len(trav[0]))
	}
}

func TestSearchEmptyQuerySet(t *testing.T) {
	tree := buildS1(t)
	trav := tree.Search(nil, nil, -1)
	if len(trav) != 0 {
		t.Errorf("expected no rows for an empty query set, got %d", len(trav))
	}
}
