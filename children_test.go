package octree

import "testing"

func TestChildOrdering(t *testing.T) {
	tree := buildS1(t)

	for k := 0; k < tree.NumNodes(); k++ {
		children := tree.Children(k)
		for i := 1; i < len(children); i++ {
			if tree.OctantMask(children[i-1]) >= tree.OctantMask(children[i]) {
				t.Errorf("node %d children not in ascending octant_mask order: %v", k, children)
			}
		}
		for _, c := range children {
			if tree.Parent(c) != k {
				t.Errorf("child %d of %d has parent %d", c, k, tree.Parent(c))
			}
		}
	}
}

func TestIsLeaf(t *testing.T) {
	tree := buildS1(t)

	leaves := 0
	for k := 0; k < tree.NumNodes(); k++ {
		if tree.IsLeaf(k) {
			leaves++
			if len(tree.Children(k)) != 0 {
				t.Errorf("node %d reports IsLeaf but has children", k)
			}
		} else if len(tree.Children(k)) == 0 {
			t.Errorf("node %d reports not-leaf but has no children", k)
		}
	}
	if leaves != 4 {
		t.Errorf("S1 should have 4 leaves, got %d", leaves)
	}
}
