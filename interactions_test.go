package octree

import "testing"

// TestInteractionListDisjointness checks invariant 7: for every node,
// its interaction list and its neighbor list are disjoint, and every
// entry is at the node's own level (point mode).
func TestInteractionListDisjointness(t *testing.T) {
	tree := buildS1(t)
	if err := tree.NeighborData(nil); err != nil {
		t.Fatalf("NeighborData: %v", err)
	}
	tree.InteractionData()

	for a := 0; a < tree.NumNodes(); a++ {
		nbors := tree.Neighbors(a)
		ilist := tree.InteractionList(a)

		nborSet := make(map[int]bool, len(nbors))
		for _, b := range nbors {
			nborSet[b] = true
		}
		for _, c := range ilist {
			if nborSet[c] {
				t.Errorf("node %d: %d is in both the interaction list and the neighbor list", a, c)
			}
			if tree.LevelOf(c) != tree.LevelOf(a) {
				t.Errorf("node %d (level %d): interaction entry %d is at level %d, want same level in point mode", a, tree.LevelOf(a), c, tree.LevelOf(c))
			}
		}
	}
}

func TestInteractionListRootEmpty(t *testing.T) {
	tree := buildS1(t)
	tree.InteractionData()
	if len(tree.InteractionList(0)) != 0 {
		t.Errorf("root interaction list should be empty, got %v", tree.InteractionList(0))
	}
}
