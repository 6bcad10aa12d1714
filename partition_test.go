package octree

import "testing"

func TestPartitionRangePointMode(t *testing.T) {
	x := [][]float64{{0.1}, {0.9}, {0.2}, {0.8}}
	xi := []int{0, 1, 2, 3}
	parentCenter := []float64{0.5}
	parentExtent := []float64{1}

	retainedLen, blocks := partitionRange(xi, x, nil, Point, parentCenter, parentExtent, 0, 4)
	if retainedLen != 0 {
		t.Fatalf("point mode should never retain, got retainedLen=%d", retainedLen)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 occupied octants, got %d", len(blocks))
	}
	if blocks[0].mask != 0 || blocks[1].mask != 1 {
		t.Fatalf("blocks should be in ascending mask order, got %+v", blocks)
	}
	if blocks[0].len != 2 || blocks[1].len != 2 {
		t.Fatalf("expected 2 objects per block, got %+v", blocks)
	}

	seen := make(map[int]bool)
	for _, i := range xi {
		seen[i] = true
	}
	if len(seen) != 4 {
		t.Fatalf("xi must remain a permutation of the input indices, got %v", xi)
	}
}

func TestPartitionRangeElementRetention(t *testing.T) {
	// A large-radius object straddling the center must be retained, not
	// assigned to either octant.
	x := [][]float64{{0.5}, {0.1}, {0.9}}
	siz := []float64{0.3, 0.01, 0.01}
	xi := []int{0, 1, 2}
	parentCenter := []float64{0.5}
	parentExtent := []float64{1}

	retainedLen, blocks := partitionRange(xi, x, siz, Element, parentCenter, parentExtent, 0, 3)
	if retainedLen != 1 {
		t.Fatalf("expected 1 retained object, got %d", retainedLen)
	}
	if xi[0] != 0 {
		t.Fatalf("retained object should occupy the leading slot, got xi=%v", xi)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks for the two small objects, got %+v", blocks)
	}
	for _, b := range blocks {
		if b.off < retainedLen {
			t.Fatalf("block %+v overlaps the retained prefix", b)
		}
	}
}
