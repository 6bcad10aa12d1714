package octree

import "math"

// octantOf returns the d-bit mask locating x within a cell centered at
// center: bit j is 1 iff x[j] >= center[j] (ties go to the upper half,
// spec §4.1).
func octantOf(center, x []float64) uint32 {
	var mask uint32
	for j, c := range center {
		if x[j] >= c {
			mask |= 1 << uint(j)
		}
	}
	return mask
}

// childCenter returns the center of the child cell identified by mask,
// given the parent's center and extent: center[j] +/- extent[j]/4
// depending on bit j of mask.
func childCenter(parentCenter, parentExtent []float64, mask uint32, out []float64) []float64 {
	for j := range parentCenter {
		quarter := parentExtent[j] / 4
		if mask&(1<<uint(j)) != 0 {
			out[j] = parentCenter[j] + quarter
		} else {
			out[j] = parentCenter[j] - quarter
		}
	}
	return out
}

// childExtent halves every axis of parentExtent; zero-extent axes stay
// zero (spec §4.5).
func childExtent(parentExtent []float64, out []float64) []float64 {
	for j, e := range parentExtent {
		out[j] = e / 2
	}
	return out
}

// contains reports whether the ball of radius radius centered at x is
// fully inside the cell (center, extent) along every axis (spec §4.1).
func contains(center, extent, x []float64, radius float64) bool {
	for j, c := range center {
		if math.Abs(x[j]-c)+radius > extent[j]/2 {
			return false
		}
	}
	return true
}

// straddles reports whether an object at x with radius radius, nominally
// assigned to the child cell (childCtr, childExt) of its parent, extends
// past that cell's boundary along some axis -- i.e. it does not fit
// cleanly inside a single child cell and must be retained at the parent
// instead (spec §4.3). Along axes where the child extent is positive
// this is the negation of contains; axes with zero child extent are
// skipped, so an object never straddles along them.
func straddles(childCtr, childExt, x []float64, radius float64) bool {
	for j, cc := range childCtr {
		if childExt[j] <= 0 {
			continue
		}
		if math.Abs(x[j]-cc)+radius > childExt[j]/2 {
			return true
		}
	}
	return false
}

// minImage returns the minimum-image displacement of delta under a
// period; period <= 0 means the axis is not periodic and delta is
// returned unchanged (spec §4.1, §4.6).
func minImage(delta, period float64) float64 {
	if period <= 0 {
		return delta
	}
	d := math.Mod(delta, period)
	if d > period/2 {
		d -= period
	} else if d < -period/2 {
		d += period
	}
	return d
}

// axisOverlap reports whether two cells, described by their centers and
// half-extents along one axis, touch or overlap under the active
// period (spec §4.1). half is extent/2, matching the "touch or overlap"
// adjacency test used throughout the neighbor finder.
func axisOverlap(aCenter, aHalf, bCenter, bHalf, period float64, periodic bool) bool {
	delta := aCenter - bCenter
	if periodic {
		delta = minImage(delta, period)
	}
	return math.Abs(delta) <= aHalf+bHalf
}
