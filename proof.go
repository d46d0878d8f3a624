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

import (
	"errors"

	"github.com/karalabe/ssz"
)

// maxProofPath is the largest number of sibling hashes a proof can carry:
// one per internal node traversed, bounded by MaxDepth.
const maxProofPath = MaxDepth

// Proof locates a key within a tree: the stem and subindex it decoded to,
// the value found there (nil if the stem was present but that subindex
// was not), and the ordered sibling hashes collected root-to-leaf during
// the descent.
type Proof struct {
	Stem     [StemSize]byte
	Subindex byte
	Value    []byte
	Path     [][32]byte
}

// errStemAbsent is returned internally by descend when the tree has no
// leaf matching the requested stem; Proof reports this as (nil, false),
// per spec.md §7's "proof absence is not an error."
var errStemAbsent = errors.New("bintree: stem not present")

// Proof produces a proof locating key. It returns (nil, false) if the
// descent reaches an absent branch, or terminates at a stem leaf whose
// stem differs from key's.
func (t *Tree) Proof(key [32]byte) (*Proof, bool) {
	var stem [StemSize]byte
	copy(stem[:], key[:StemSize])
	subindex := key[StemSize]

	path, leaf, err := descend(t.root, stem, 0)
	if err != nil {
		return nil, false
	}

	var value []byte
	if leaf.hasValue(subindex) {
		value = leaf.values[subindex]
	}
	return &Proof{Stem: stem, Subindex: subindex, Value: value, Path: path}, true
}

// descend walks from n toward the leaf matching stem, appending one
// sibling hash per internal node in root-to-leaf order, exactly as
// spec.md §4.3.4 requires: "the ordered list of sibling hashes encountered
// during the descent, in root-to-leaf order."
func descend(n *node, stem [StemSize]byte, depth int) ([][32]byte, *node, error) {
	if n == nil {
		return nil, nil, errStemAbsent
	}
	if n.kind == kindStem {
		if n.stem != stem {
			return nil, nil, errStemAbsent
		}
		return nil, n, nil
	}

	var next, sibling *node
	if bit(stem[:], depth) == 0 {
		next, sibling = n.left, n.right
	} else {
		next, sibling = n.right, n.left
	}

	path, leaf, err := descend(next, stem, depth+1)
	if err != nil {
		return nil, nil, err
	}
	return append([][32]byte{sibling.hash()}, path...), leaf, nil
}

// Verify recomputes the leaf digest from proof's disclosed stem, subindex
// and value, then folds it with the recorded siblings walked leaf-to-root
// (the reverse of how they were collected). Path[i] was recorded at
// descent depth i, so index i is already the depth whose bit decided
// left/right for that sibling; no re-reversal is needed when consuming it
// in reverse array order. It accepts iff the final hash equals
// expectedRoot. Verify never returns an error: any mismatch, including
// one caused by a malformed proof, is simply a failed verification
// (spec.md §7).
func Verify(proof *Proof, expectedRoot [32]byte, key [32]byte) bool {
	var keyStem [StemSize]byte
	copy(keyStem[:], key[:StemSize])
	if proof.Stem != keyStem || proof.Subindex != key[StemSize] {
		return false
	}
	if len(proof.Path) > MaxDepth {
		return false
	}

	cur := stemLeafHash(proof.Stem, func(i int) []byte {
		if i == int(proof.Subindex) {
			return proof.Value
		}
		return nil
	})

	n := len(proof.Path)
	for i := n - 1; i >= 0; i-- {
		sibling := proof.Path[i]
		if bit(proof.Stem[:], i) == 0 {
			cur = h2(cur, sibling)
		} else {
			cur = h2(sibling, cur)
		}
	}
	return cur == expectedRoot
}

// SizeSSZ reports the wire size of the proof: the fixed stem+subindex
// prefix, a dynamic Value field and a dynamic Path field, each preceded by
// a 4-byte offset as SSZ's variable-length encoding requires.
func (p *Proof) SizeSSZ(siz *ssz.Sizer) uint32 {
	return StemSize + 1 + 4 + 4 +
		ssz.SizeDynamicBytes(siz, p.Value) +
		ssz.SizeSliceOfStaticBytes(siz, p.Path)
}

// DefineSSZ declares the proof's wire layout: fixed stem and subindex,
// then offset-addressed dynamic Value and Path sections. Value's absence
// (spec.md's "optional value") is represented, as SSZ has no native
// option type, by a zero-length dynamic field.
func (p *Proof) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineStaticBytes(codec, &p.Stem)
	ssz.DefineUint8(codec, &p.Subindex)
	ssz.DefineDynamicBytesOffset(codec, &p.Value, 32)
	ssz.DefineSliceOfStaticBytesOffset(codec, &p.Path, maxProofPath)
	ssz.DefineDynamicBytesContent(codec, &p.Value, 32)
	ssz.DefineSliceOfStaticBytesContent(codec, &p.Path, maxProofPath)
}

// MarshalSSZ encodes the proof to its SSZ wire form.
func (p *Proof) MarshalSSZ() ([]byte, error) {
	return ssz.EncodeToBytes(p)
}

// UnmarshalSSZProof decodes a proof previously produced by MarshalSSZ.
func UnmarshalSSZProof(blob []byte) (*Proof, error) {
	p := new(Proof)
	if err := ssz.DecodeFromBytes(blob, p); err != nil {
		return nil, err
	}
	return p, nil
}
