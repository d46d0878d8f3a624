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

import "github.com/bits-and-blooms/bitset"

// StemSize is the length, in bytes, of the prefix shared by every value
// grouped under one stem leaf.
const StemSize = 31

// NodeWidth is the number of independently addressable values a single
// stem leaf holds.
const NodeWidth = 256

// MaxDepth is the number of bits in a stem. Two distinct stems cannot
// differ only beyond this depth, since they would then be identical.
const MaxDepth = StemSize * 8

// nodeKind tags the closed two-variant sum that makes up every non-empty
// node in the tree: a stem leaf or an internal branch. Absence of a node
// is represented by a nil *node pointer, not a third kind, so there is no
// dynamic dispatch anywhere in the tree: every recursive function switches
// on this tag directly.
type nodeKind uint8

const (
	kindStem nodeKind = iota
	kindInternal
)

// node is the tagged variant used for both stem leaves and internal
// branches. Only the fields relevant to its kind are populated; this
// mirrors the teacher's "take, transform, put back" ownership discipline
// (ethereum-go-verkle/tree.go) without the open VerkleNode interface it
// uses to get there, per spec.md's explicit closed-sum-type guidance.
type node struct {
	kind nodeKind

	// kindStem fields.
	stem    [StemSize]byte
	present *bitset.BitSet // which of the 256 value slots are populated
	values  [NodeWidth][]byte

	// kindInternal fields.
	left, right *node
}

func newStemLeaf(stem [StemSize]byte, subindex byte, value []byte) *node {
	n := &node{
		kind:    kindStem,
		stem:    stem,
		present: bitset.New(NodeWidth),
	}
	n.setValue(subindex, value)
	return n
}

func (n *node) setValue(subindex byte, value []byte) {
	n.present.Set(uint(subindex))
	n.values[subindex] = value
}

func (n *node) hasValue(subindex byte) bool {
	return n.present.Test(uint(subindex))
}

// bit returns bit d of stem, most-significant-bit first within each byte,
// byte 0 first.
func bit(stem []byte, d int) byte {
	return (stem[d/8] >> (7 - uint(d%8))) & 1
}

// firstDifferingBit returns the first depth at or after start at which a
// and b diverge. It panics if none exists within MaxDepth, which can only
// happen for two identical stems.
func firstDifferingBit(a, b [StemSize]byte, start int) int {
	for d := start; d < MaxDepth; d++ {
		if bit(a[:], d) != bit(b[:], d) {
			return d
		}
	}
	panic("bintree: stems are identical past the maximum depth")
}

// hash computes this node's contribution to the tree's Merkle root,
// following spec §4.3.3 exactly: an absent child hashes to 32 zero bytes,
// an internal node hashes H(left||right), and a stem leaf folds its 256
// value slots through eight pairwise levels before hashing
// H(stem || 0x00 || contentRoot).
func (n *node) hash() [32]byte {
	if n == nil {
		return zeroHash
	}
	switch n.kind {
	case kindInternal:
		return h2(n.left.hash(), n.right.hash())
	default:
		return n.stemHash()
	}
}

func (n *node) stemHash() [32]byte {
	return stemLeafHash(n.stem, func(i int) []byte {
		if n.hasValue(byte(i)) {
			return n.values[i]
		}
		return nil
	})
}

// stemLeafHash computes the two-level stem-leaf hash for an arbitrary
// value accessor, so that the same fold is usable both from a live *node
// and from a proof being re-verified against a single disclosed value.
func stemLeafHash(stem [StemSize]byte, valueAt func(i int) []byte) [32]byte {
	var level [NodeWidth][32]byte
	for i := 0; i < NodeWidth; i++ {
		v := valueAt(i)
		if v == nil {
			level[i] = H(zero64[:])
		} else {
			level[i] = H(v)
		}
	}

	cur := level[:]
	for len(cur) > 1 {
		next := make([][32]byte, (len(cur)+1)/2)
		for i := range next {
			if 2*i+1 < len(cur) {
				next[i] = h2(cur[2*i], cur[2*i+1])
			} else {
				// Lone element: never reached at width 256, a power of
				// two, but kept for any future change in fan-out (see
				// spec.md §9's open question on this exact case).
				next[i] = H(cur[2*i][:])
			}
		}
		cur = next
	}

	var buf [StemSize + 1 + 32]byte
	copy(buf[:StemSize], stem[:])
	// buf[StemSize] is left at the zero separator byte.
	copy(buf[StemSize+1:], cur[0][:])
	return H(buf[:])
}
