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

import "lukechampine.com/blake3"

// zeroHash is the canonical "empty slot" digest. It is returned instead of
// the real BLAKE3 digest whenever the input is empty or is the 64-byte
// all-zero string, so that an absent value and an all-zero 64-byte buffer
// are indistinguishable to the tree, and so that emptiness propagates
// through every Merkle level without ever colliding with a real digest of
// some other length.
var zeroHash [32]byte

var zero64 [64]byte

// H is the hasher used uniformly for every node and leaf digest in the
// tree. It is a pure function: no shared state, no setup.
func H(data []byte) [32]byte {
	if len(data) == 0 || (len(data) == 64 && string(data) == string(zero64[:])) {
		return zeroHash
	}
	return blake3.Sum256(data)
}

// h2 hashes the concatenation of two 32-byte digests, as used at every
// internal-node level and every stem-leaf fold level.
func h2(a, b [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return H(buf[:])
}
