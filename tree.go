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

// Package bintree implements a binary authenticated key-value tree used
// as a state commitment for an account-based blockchain, and the
// address-derived key-embedding scheme that maps accounts, storage slots
// and contract-code chunks onto it.
package bintree

// Tree is a single-writer, single-reader binary stem tree. The zero value
// is an empty tree, the same as what New returns.
type Tree struct {
	root *node
}

// New returns an empty tree. Its root hashes to 32 zero bytes.
func New() *Tree {
	return &Tree{}
}

// Insert sets the value at (stem, subindex) = (key[:31], key[31]) to
// value. Re-inserting at the same key is last-writer-wins. Panics if the
// descent would exceed the maximum depth, which can only happen if two
// distinct 31-byte stems are asked to share a leaf (an invariant
// violation, not a recoverable error — see spec.md §7).
func (t *Tree) Insert(key [32]byte, value []byte) {
	var stem [StemSize]byte
	copy(stem[:], key[:StemSize])
	subindex := key[StemSize]

	t.root = insert(t.root, stem, subindex, value, 0)
}

// insert implements the descent of spec.md §4.3.2: an absent slot becomes
// a new stem leaf, a stem leaf with a matching stem is overwritten in
// place, a stem leaf with a differing stem is split at the first bit the
// two stems disagree on, and an internal node recurses into the child
// selected by the bit at the current depth. It follows the "take,
// transform, put back" ownership discipline the teacher's InternalNode.Insert
// uses: n is either mutated and returned, or replaced wholesale.
func insert(n *node, stem [StemSize]byte, subindex byte, value []byte, depth int) *node {
	if depth >= MaxDepth {
		panic("bintree: insertion depth exceeds maximum (248)")
	}

	if n == nil {
		return newStemLeaf(stem, subindex, value)
	}

	switch n.kind {
	case kindStem:
		if n.stem == stem {
			n.setValue(subindex, value)
			return n
		}
		return split(n, stem, subindex, value, depth)
	default: // kindInternal
		if bit(stem[:], depth) == 0 {
			n.left = insert(n.left, stem, subindex, value, depth+1)
		} else {
			n.right = insert(n.right, stem, subindex, value, depth+1)
		}
		return n
	}
}

// split separates an existing stem leaf from a newly inserted one that
// shares a prefix with it, building a chain of single-child internal
// nodes down to the first differing bit and placing both leaves as
// siblings there.
func split(existing *node, stem [StemSize]byte, subindex byte, value []byte, depth int) *node {
	branchDepth := firstDifferingBit(existing.stem, stem, depth)
	newLeaf := newStemLeaf(stem, subindex, value)

	branch := &node{kind: kindInternal}
	if bit(stem[:], branchDepth) == 0 {
		branch.left, branch.right = newLeaf, existing
	} else {
		branch.left, branch.right = existing, newLeaf
	}

	// Chain single-child internal nodes from depth up to branchDepth-1,
	// each carrying the common descendant on the side dictated by the
	// shared bit at that depth.
	for d := branchDepth - 1; d >= depth; d-- {
		parent := &node{kind: kindInternal}
		if bit(stem[:], d) == 0 {
			parent.left = branch
		} else {
			parent.right = branch
		}
		branch = parent
	}
	return branch
}

// Root returns the Merkle root of the current tree. It is deterministic
// and depends only on the set of present (key, value) pairs, not on
// insertion order.
func (t *Tree) Root() [32]byte {
	return t.root.hash()
}
