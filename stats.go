package octree

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats is a read-only diagnostic snapshot of a tree, in the spirit of
// the teacher's own size counters, extended with locale-aware text
// formatting for large node counts.
type Stats struct {
	Dim        int
	Mode       Mode
	NumNodes   int
	Depth      int
	LevelSizes []int

	MinLeafOccupancy int
	MaxLeafOccupancy int
	MeanLeafOccupancy float64
	NumLeaves         int
}

// Stats computes a Stats snapshot. It does not materialize any derived
// structure beyond child data, which it auto-invokes.
func (t *Tree) Stats() Stats {
	t.ChildData()

	lvl := t.Levels()
	sizes := make([]int, lvl.Depth+1)
	for l := 0; l <= lvl.Depth; l++ {
		sizes[l] = lvl.Offsets[l+1] - lvl.Offsets[l]
	}

	s := Stats{
		Dim:        t.dim,
		Mode:       t.mode,
		NumNodes:   t.NumNodes(),
		Depth:      t.depth,
		LevelSizes: sizes,
	}

	min, max, sum, count := -1, -1, 0, 0
	for k := 0; k < t.NumNodes(); k++ {
		if !t.IsLeaf(k) {
			continue
		}
		_, length := t.Range(k)
		if min < 0 || length < min {
			min = length
		}
		if length > max {
			max = length
		}
		sum += length
		count++
	}
	s.NumLeaves = count
	if count > 0 {
		s.MinLeafOccupancy = min
		s.MaxLeafOccupancy = max
		s.MeanLeafOccupancy = float64(sum) / float64(count)
	}
	return s
}

// String renders Stats with locale-aware thousands separators for the
// node and leaf counts, via golang.org/x/text/message.
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("dim=%d mode=%s nodes=%d depth=%d leaves=%d occupancy(min=%d,max=%d,mean=%.2f)",
		s.Dim, s.Mode, s.NumNodes, s.Depth, s.NumLeaves,
		s.MinLeafOccupancy, s.MaxLeafOccupancy, s.MeanLeafOccupancy)
}
