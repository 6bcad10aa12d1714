package octree

import "fmt"

const extentMargin = 1e-9

// Tree is the compact, breadth-first representation of a hyperoctree
// (spec §3). Every field below forms the base representation; derived
// structures (children, geometry, neighbors, interaction lists) are
// materialized lazily by the corresponding method and owned by the
// Tree for its lifetime.
//
// A Tree is read-only after BuildTree returns. Like the teacher's
// Table, there is no concurrent-mutation story: construction and every
// derived pass are pure functions over prior state.
type Tree struct {
	dim     int
	mode    Mode
	occ     int
	lvlMax  int
	adap    Adaptivity
	workers int

	n   int
	x   [][]float64
	siz []float64

	rootCenter []float64
	rootExtent []float64

	// base representation, one entry per node, in BFS order.
	parent     []int
	xiOff      []int
	xiLen      []int
	octantMask []uint32
	xi         []int

	// lvlOff[l] is the first node index of level l; lvlOff[depth+1]
	// is the total node count.
	lvlOff []int
	depth  int

	// builder-private center/extent, kept only to drive subdivision
	// decisions; center/extent below are the lazily-materialized public
	// derived structure and is computed independently (spec §2: data
	// flows strictly forward, each stage idempotent and separate).
	buildCenter [][]float64
	buildExtent [][]float64

	haveChildren bool
	childPtr     []int
	childIdx     []int

	haveGeometry bool
	center       [][]float64
	extent       [][]float64

	haveNeighbors bool
	per           []bool
	neighborPtr   []int
	neighborIdx   []int

	haveInteractions bool
	ilistPtr         []int
	ilistIdx         []int
}

// Dim returns the tree's dimension.
func (t *Tree) Dim() int { return t.dim }

// Mode returns the object-inclusion policy the tree was built with.
func (t *Tree) Mode() Mode { return t.mode }

// NumNodes returns the total node count.
func (t *Tree) NumNodes() int { return t.lvlOff[len(t.lvlOff)-1] }

// Depth returns the tree's depth (levels beyond the root).
func (t *Tree) Depth() int { return t.depth }

// Levels returns the accessor form of lvlx (spec §6, Open Question (a)).
func (t *Tree) Levels() LevelIndex {
	off := make([]int, len(t.lvlOff))
	copy(off, t.lvlOff)
	return LevelIndex{Offsets: off, Depth: t.depth}
}

// LevelOf returns the BFS level of node k.
func (t *Tree) LevelOf(k int) int {
	for l := 0; l <= t.depth; l++ {
		if k < t.lvlOff[l+1] {
			return l
		}
	}
	return t.depth
}

// Parent returns the parent node index of k; the root is its own
// parent by convention (spec §3).
func (t *Tree) Parent(k int) int { return t.parent[k] }

// Range returns the half-open object-index range [off, off+len) held
// by node k, as positions into Permutation.
func (t *Tree) Range(k int) (off, length int) { return t.xiOff[k], t.xiLen[k] }

// Permutation returns the tree's object-index permutation array. Read
// it through Range to obtain the object indices held by a node.
func (t *Tree) Permutation() []int { return t.xi }

// OctantMask returns the d-bit mask giving k's octant within its
// parent; the root's mask is zero by convention.
func (t *Tree) OctantMask(k int) uint32 { return t.octantMask[k] }

// IsLeaf reports whether node k was never subdivided.
func (t *Tree) IsLeaf(k int) bool {
	t.ChildData()
	return t.childPtr[k] == t.childPtr[k+1]
}

// BuildTree constructs a hyperoctree over N objects in cfg.Dim-space
// (spec §4.3). x has length N; each x[i] has length cfg.Dim. siz gives
// per-object radii and is ignored in Point mode, but when non-nil must
// still have length N. A failed BuildTree returns no tree and no
// partial state (spec §7).
func BuildTree(x [][]float64, siz []float64, cfg Config) (*Tree, error) {
	if cfg.Dim < 1 {
		return nil, invalidInputError(ErrInvalidDim, fmt.Sprintf("got %d", cfg.Dim))
	}
	if cfg.Dim > maxDim {
		return nil, invalidInputError(ErrDepthOverflow, fmt.Sprintf("dim %d exceeds %d-bit octant mask", cfg.Dim, maxDim))
	}
	n := len(x)
	if n < 1 {
		return nil, invalidInputError(ErrInvalidN, fmt.Sprintf("got %d", n))
	}
	if cfg.Occ < 1 {
		return nil, invalidInputError(ErrInvalidOcc, fmt.Sprintf("got %d", cfg.Occ))
	}
	if !cfg.Mode.valid() {
		return nil, invalidInputError(ErrInvalidMode, fmt.Sprintf("got %d", cfg.Mode))
	}
	for i, xi := range x {
		if len(xi) != cfg.Dim {
			return nil, invalidInputError(ErrShapeMismatch, fmt.Sprintf("x[%d] has %d coords, want %d", i, len(xi), cfg.Dim))
		}
	}
	if cfg.Mode != Point {
		if len(siz) != n {
			return nil, invalidInputError(ErrShapeMismatch, fmt.Sprintf("siz has %d entries, want %d", len(siz), n))
		}
		for i, s := range siz {
			if s < 0 {
				return nil, invalidInputError(ErrNegativeSize, fmt.Sprintf("siz[%d] = %v", i, s))
			}
		}
	} else if siz != nil && len(siz) != n {
		return nil, invalidInputError(ErrShapeMismatch, fmt.Sprintf("siz has %d entries, want %d", len(siz), n))
	}

	effSiz := siz
	if cfg.Mode == Point {
		effSiz = make([]float64, n)
	}

	rootCenter, rootExtent, err := deriveRootGeometry(x, effSiz, cfg)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		dim:        cfg.Dim,
		mode:       cfg.Mode,
		occ:        cfg.Occ,
		lvlMax:     cfg.LvlMax,
		adap:       cfg.Adap,
		workers:    cfg.Workers,
		n:          n,
		x:          x,
		siz:        effSiz,
		rootCenter: rootCenter,
		rootExtent: rootExtent,
	}

	t.construct()
	return t, nil
}

// deriveRootGeometry computes the root center/extent per spec §4.3 and
// rejects degenerate geometry per spec §7.
func deriveRootGeometry(x [][]float64, siz []float64, cfg Config) (center, extent []float64, err error) {
	d := cfg.Dim
	center = make([]float64, d)
	extent = make([]float64, d)

	dataMin := make([]float64, d)
	dataMax := make([]float64, d)
	for j := 0; j < d; j++ {
		dataMin[j] = x[0][j] - siz[0]
		dataMax[j] = x[0][j] + siz[0]
	}
	for i := 1; i < len(x); i++ {
		for j := 0; j < d; j++ {
			lo := x[i][j] - siz[i]
			hi := x[i][j] + siz[i]
			if lo < dataMin[j] {
				dataMin[j] = lo
			}
			if hi > dataMax[j] {
				dataMax[j] = hi
			}
		}
	}

	allZero := true
	for j := 0; j < d; j++ {
		center[j] = (dataMin[j] + dataMax[j]) / 2

		if len(cfg.Ext) == d && cfg.Ext[j] > 0 {
			extent[j] = cfg.Ext[j]
		} else {
			span := dataMax[j] - dataMin[j]
			if span > 0 {
				extent[j] = span * (1 + extentMargin)
			} else {
				extent[j] = 0
			}
		}
		if extent[j] != 0 {
			allZero = false
		}
	}

	if allZero && distinctObjectCount(x) > 1 {
		return nil, ErrDegenerateRoot
	}
	return center, extent, nil
}

func distinctObjectCount(x [][]float64) int {
	seen := make(map[string]struct{}, len(x))
	for _, xi := range x {
		seen[fmt.Sprint(xi)] = struct{}{}
		if len(seen) > 1 {
			return len(seen)
		}
	}
	return len(seen)
}
