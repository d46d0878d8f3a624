// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package bintree

import "github.com/prysmaticlabs/go-bitfield"

// LeafOccupancy records, for a single stem leaf, which of its 256
// subindices hold a value.
type LeafOccupancy struct {
	Stem     [StemSize]byte
	Occupied bitfield.Bitvector256
}

// TreeStats summarizes the shape of a tree: how deep it is, how many
// leaves and internal nodes it has, how many (stem, subindex) pairs are
// populated, and the per-leaf occupancy bitfields. It is a read-only
// snapshot, not a live view.
type TreeStats struct {
	DepthMin        int
	DepthMax        int
	LeafCount       int
	InternalCount   int
	KeyValueCount   int
	LeafOccupancies []LeafOccupancy
}

// Stats walks the tree once and reports TreeStats. An empty tree reports
// all-zero counts and a nil LeafOccupancies slice.
func (t *Tree) Stats() TreeStats {
	var s TreeStats
	if t.root == nil {
		return s
	}
	depthMin, depthMax := walkStats(t.root, 0, &s)
	s.DepthMin, s.DepthMax = depthMin, depthMax
	return s
}

// walkStats is the adapted, in-memory-only descendant of the teacher's
// TreeWitness: no NodeResolverFn, because every node here is already
// resident, and no error return, because there is nothing to resolve.
func walkStats(n *node, depth int, s *TreeStats) (depthMin, depthMax int) {
	if n.kind == kindStem {
		s.LeafCount++

		var occ bitfield.Bitvector256
		occ = bitfield.NewBitvector256()
		for i := 0; i < NodeWidth; i++ {
			if n.hasValue(byte(i)) {
				s.KeyValueCount++
				occ.SetBitAt(uint64(i), true)
			}
		}
		s.LeafOccupancies = append(s.LeafOccupancies, LeafOccupancy{Stem: n.stem, Occupied: occ})
		return depth, depth
	}

	s.InternalCount++
	depthMin, depthMax = -1, -1
	for _, child := range []*node{n.left, n.right} {
		if child == nil {
			continue
		}
		childMin, childMax := walkStats(child, depth+1, s)
		if depthMin == -1 || childMin < depthMin {
			depthMin = childMin
		}
		if childMax > depthMax {
			depthMax = childMax
		}
	}
	return depthMin, depthMax
}
