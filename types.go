package octree

// Mode is the per-object inclusion policy used during construction and
// by the neighbor finder (spec §3, §4.3, §4.6).
type Mode int

const (
	// Point objects have no size; they are never retained at an
	// ancestor node and same-level-only neighbor semantics apply.
	Point Mode = iota
	// Element objects carry a radius. An object that straddles a
	// child boundary given its radius is retained at the current
	// node instead of descending.
	Element
	// SparseElement is retained and partitioned exactly like Element:
	// in both modes a retained object is represented only at the
	// highest ancestor that contains it and is dropped from every
	// descendant range entirely rather than merely flagged (spec §4.3,
	// Open Question (b)).
	SparseElement
)

func (m Mode) String() string {
	switch m {
	case Point:
		return "point"
	case Element:
		return "element"
	case SparseElement:
		return "sparse_element"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool {
	return m == Point || m == Element || m == SparseElement
}

// Adaptivity selects between per-node adaptive subdivision and the
// level-synchronized uniform variant (spec §4.3).
type Adaptivity int

const (
	// Adaptive subdivides exactly the nodes whose occupancy exceeds
	// the leaf budget.
	Adaptive Adaptivity = iota
	// Uniform subdivides every non-trivial node at a level as soon as
	// any node at that level would be subdivided under the adaptive
	// predicate.
	Uniform
)

// maxDim bounds the dimension supported by the bitmask-based octant
// indexing used throughout this package (spec §1 Non-goals).
const maxDim = 32

// Config carries the construction parameters named in spec §3.
type Config struct {
	// Dim is the dimension d >= 1 of the space the objects live in.
	Dim int

	// Mode selects the object-inclusion policy.
	Mode Mode

	// Occ is the maximum leaf occupancy under adaptive subdivision.
	Occ int

	// LvlMax is a hard cap on depth (root is level 0); a negative
	// value means unbounded.
	LvlMax int

	// Ext gives the per-axis root extent. A non-positive entry means
	// "derive this axis from the data bounding box, inflated to
	// contain every object's size." Ext may be nil, which derives
	// every axis.
	Ext []float64

	// Adap selects adaptive or uniform subdivision.
	Adap Adaptivity

	// Workers bounds the optional data-parallel worker pool used by
	// the geometry reconstructor and neighbor finder to materialize
	// one tree level at a time (spec §5.). Zero or one disables it and
	// runs the sequential path.
	Workers int
}

// LevelIndex is the accessor form of the lvlx table (spec §6): row 0 is
// exposed as Offsets, and Depth is exposed directly rather than through
// the reference's opaque row 1 (spec §9, Open Question (a)).
type LevelIndex struct {
	// Offsets has length Depth+2; Offsets[l] is the first node index
	// of level l, and Offsets[len(Offsets)-1] is the total node count.
	Offsets []int
	Depth   int
}
