package octree

import "testing"

func TestGeometryDataS1(t *testing.T) {
	tree := buildS1(t)

	wantCenter := map[int]float64{1: 0.25, 2: 0.75, 3: 0.125, 4: 0.375, 5: 0.625, 6: 0.875}
	wantExtent := map[int]float64{1: 0.5, 2: 0.5, 3: 0.25, 4: 0.25, 5: 0.25, 6: 0.25}

	for k, want := range wantCenter {
		if got := tree.Center(k)[0]; got != want {
			t.Errorf("node %d center = %v, want %v", k, got, want)
		}
	}
	for k, want := range wantExtent {
		if got := tree.Extent(k)[0]; got != want {
			t.Errorf("node %d extent = %v, want %v", k, got, want)
		}
	}

	if tree.Center(0)[0] != 0.5 || tree.Extent(0)[0] != 1 {
		t.Errorf("root center/extent = %v/%v, want 0.5/1", tree.Center(0), tree.Extent(0))
	}
}

func TestGeometryDataParallelMatchesSequential(t *testing.T) {
	x := make([][]float64, 0, 400)
	for i := 0; i < 400; i++ {
		x = append(x, []float64{float64(i) / 400})
	}
	cfgSeq := Config{Dim: 1, Mode: Point, Occ: 2, LvlMax: -1, Ext: []float64{1}, Adap: Adaptive}
	cfgPar := cfgSeq
	cfgPar.Workers = 8

	seq, err := BuildTree(x, nil, cfgSeq)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	par, err := BuildTree(x, nil, cfgPar)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	if seq.NumNodes() != par.NumNodes() {
		t.Fatalf("node counts differ: %d vs %d", seq.NumNodes(), par.NumNodes())
	}
	for k := 0; k < seq.NumNodes(); k++ {
		cs, ps := seq.Center(k), par.Center(k)
		es, ep := seq.Extent(k), par.Extent(k)
		for j := range cs {
			if cs[j] != ps[j] || es[j] != ep[j] {
				t.Fatalf("node %d geometry differs between sequential and parallel builds", k)
			}
		}
	}
}
