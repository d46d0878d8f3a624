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

import "testing"

func TestStatsEmptyTree(t *testing.T) {
	t.Parallel()

	s := New().Stats()
	if s.LeafCount != 0 || s.InternalCount != 0 || s.KeyValueCount != 0 {
		t.Fatalf("stats of an empty tree = %+v, want all zero", s)
	}
	if s.LeafOccupancies != nil {
		t.Fatalf("LeafOccupancies = %v, want nil", s.LeafOccupancies)
	}
}

func TestStatsOneStemColocatedValues(t *testing.T) {
	t.Parallel()

	tr := New()
	for _, sub := range []byte{3, 4, 9, 255} {
		var key, value [32]byte
		key[31] = sub
		tr.Insert(key, value[:])
	}

	s := tr.Stats()
	if s.LeafCount != 1 {
		t.Fatalf("LeafCount = %d, want 1", s.LeafCount)
	}
	if s.InternalCount != 0 {
		t.Fatalf("InternalCount = %d, want 0", s.InternalCount)
	}
	if s.KeyValueCount != 4 {
		t.Fatalf("KeyValueCount = %d, want 4", s.KeyValueCount)
	}
	if len(s.LeafOccupancies) != 1 {
		t.Fatalf("len(LeafOccupancies) = %d, want 1", len(s.LeafOccupancies))
	}

	occ := s.LeafOccupancies[0].Occupied
	for _, sub := range []byte{3, 4, 9, 255} {
		if !occ.BitAt(uint64(sub)) {
			t.Fatalf("subindex %d not marked occupied", sub)
		}
	}
	if occ.BitAt(5) {
		t.Fatalf("subindex 5 marked occupied, should not be")
	}
}

func TestStatsTwoStemColocatedValues(t *testing.T) {
	t.Parallel()

	tr := New()
	for _, prefix := range []byte{0x00, 0x80} {
		for _, sub := range []byte{3, 4} {
			var key, value [32]byte
			for i := range key {
				key[i] = prefix
			}
			key[31] = sub
			tr.Insert(key, value[:])
		}
	}

	s := tr.Stats()
	if s.LeafCount != 2 {
		t.Fatalf("LeafCount = %d, want 2", s.LeafCount)
	}
	if s.InternalCount != 1 {
		t.Fatalf("InternalCount = %d, want 1", s.InternalCount)
	}
	if s.KeyValueCount != 4 {
		t.Fatalf("KeyValueCount = %d, want 4", s.KeyValueCount)
	}
	if s.DepthMin != 1 || s.DepthMax != 1 {
		t.Fatalf("DepthMin/Max = %d/%d, want 1/1", s.DepthMin, s.DepthMax)
	}
}
