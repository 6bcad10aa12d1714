package octree

import "sort"

// octantBlock is one non-empty, contiguous sub-range produced by
// partitionRange, tagged with the octant mask of its objects.
type octantBlock struct {
	mask uint32
	off  int
	len  int
}

// partitionRange reorders xi[off:off+length] in place around the cell
// (parentCenter, parentExtent), producing at most 2^d contiguous,
// non-empty blocks keyed by octant mask (spec §4.2). Objects that
// straddle a child boundary given their radius are held out of every
// block and left in the range's leading retainedLen slots instead
// (spec §4.3); in point mode retainedLen is always zero.
//
// Stability across objects sharing a mask is not guaranteed, matching
// the partitioner's stated contract.
func partitionRange(xi []int, x [][]float64, siz []float64, mode Mode, parentCenter, parentExtent []float64, off, length int) (retainedLen int, blocks []octantBlock) {
	d := len(parentCenter)
	mask := make([]uint32, length)
	retained := make([]bool, length)

	childExt := make([]float64, d)
	childExtent(parentExtent, childExt)

	ctrBuf := make([]float64, d)
	counts := make(map[uint32]int)

	for i := 0; i < length; i++ {
		obj := xi[off+i]
		m := octantOf(parentCenter, x[obj])
		mask[i] = m

		if mode != Point {
			childCenter(parentCenter, parentExtent, m, ctrBuf)
			radius := siz[obj]
			if straddles(ctrBuf, childExt, x[obj], radius) {
				retained[i] = true
				retainedLen++
				continue
			}
		}
		counts[m]++
	}

	maskList := make([]uint32, 0, len(counts))
	for m := range counts {
		maskList = append(maskList, m)
	}
	sort.Slice(maskList, func(a, b int) bool { return maskList[a] < maskList[b] })

	blocks = make([]octantBlock, len(maskList))
	blockStart := make(map[uint32]int, len(maskList))
	cursor := retainedLen
	for bi, m := range maskList {
		blocks[bi] = octantBlock{mask: m, off: off + cursor, len: counts[m]}
		blockStart[m] = cursor
		cursor += counts[m]
	}

	temp := make([]int, length)
	retCursor := 0
	writeCursor := make(map[uint32]int, len(maskList))
	for m, start := range blockStart {
		writeCursor[m] = start
	}
	for i := 0; i < length; i++ {
		obj := xi[off+i]
		if retained[i] {
			temp[retCursor] = obj
			retCursor++
			continue
		}
		m := mask[i]
		temp[writeCursor[m]] = obj
		writeCursor[m]++
	}
	copy(xi[off:off+length], temp)

	return retainedLen, blocks
}
