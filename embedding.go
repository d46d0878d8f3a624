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

import "encoding/binary"

// Constants from spec.md §4.2, bit-exact.
const (
	BasicDataLeafKey   = 0
	CodeHashLeafKey    = 1
	HeaderStorageOffset = 64
	CodeOffset          = 128
	StemSubtreeWidth    = 256
	MainStorageOffset   = 256

	PushOffset = 95
	Push1      = PushOffset + 1
	Push32     = PushOffset + 32
)

// Address is a 20-byte account address, widened to 32 bytes (left-padded
// with zeros) wherever the embedding needs 32 bytes of input.
type Address [20]byte

// Widen left-pads a with 12 zero bytes to produce the 32-byte address used
// as tree_key's hash input.
func (a Address) Widen() [32]byte {
	var out [32]byte
	copy(out[12:], a[:])
	return out
}

// TreeKey implements spec.md §4.2's tree_key primitive: hash the 32-byte
// widened address concatenated with the little-endian 8-byte tree index,
// then overwrite byte 31 of the digest with subIndex.
func TreeKey(address32 [32]byte, treeIndex uint64, subIndex byte) [32]byte {
	var buf [40]byte
	copy(buf[:32], address32[:])
	binary.LittleEndian.PutUint64(buf[32:], treeIndex)

	digest := H(buf[:])
	key := digest
	key[31] = subIndex
	return key
}

// TreeKeyForBasicData returns the key of an account's basic-data leaf.
func TreeKeyForBasicData(addr Address) [32]byte {
	return TreeKey(addr.Widen(), 0, BasicDataLeafKey)
}

// TreeKeyForCodeHash returns the key of an account's code-hash leaf.
func TreeKeyForCodeHash(addr Address) [32]byte {
	return TreeKey(addr.Widen(), 0, CodeHashLeafKey)
}

// TreeKeyForStorageSlot returns the key of storage slot k. The first 64
// slots (and the account header) share one stem; everything else is
// distributed across MainStorageOffset-based stems.
func TreeKeyForStorageSlot(addr Address, k uint64) [32]byte {
	var pos uint64
	if k < CodeOffset-HeaderStorageOffset {
		pos = HeaderStorageOffset + k
	} else {
		pos = MainStorageOffset + k
	}
	return TreeKey(addr.Widen(), pos/StemSubtreeWidth, byte(pos%StemSubtreeWidth))
}

// TreeKeyForCodeChunk returns the key of code chunk c.
func TreeKeyForCodeChunk(addr Address, c uint64) [32]byte {
	pos := uint64(CodeOffset) + c
	return TreeKey(addr.Widen(), pos/StemSubtreeWidth, byte(pos%StemSubtreeWidth))
}
