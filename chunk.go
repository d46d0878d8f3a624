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

// chunkSize is the width, in bytes, of one code window. Each window
// produces one 32-byte leaf: a one-byte push-data counter followed by the
// window's contents.
const chunkSize = 31

// ChunkifyCode divides contract bytecode into 31-byte windows and returns
// one 32-byte leaf per window. Byte 0 of each leaf records how many bytes
// at the start of that chunk are push-data (the tail of a PUSHn operand
// from a previous chunk) rather than executable opcodes, so a verifier can
// decide jumpdest validity without re-scanning from the start of the code.
func ChunkifyCode(code []byte) [][32]byte {
	padded := make([]byte, (len(code)+chunkSize-1)/chunkSize*chunkSize)
	copy(padded, code)
	if len(padded) == 0 {
		return nil
	}

	// scratch[p] holds how many bytes of push-data remain starting at
	// byte position p, including p itself.
	scratch := make([]byte, len(padded)+32)
	pos := 0
	for pos < len(padded) {
		n := 0
		if padded[pos] >= Push1 && padded[pos] <= Push32 {
			n = int(padded[pos]) - PushOffset
		}
		for x := 0; x < n; x++ {
			if pos+1+x < len(scratch) {
				scratch[pos+1+x] = byte(n - x)
			}
		}
		pos += 1 + n
	}

	chunks := make([][32]byte, len(padded)/chunkSize)
	for i := range chunks {
		chunks[i][0] = scratch[i*chunkSize]
		copy(chunks[i][1:], padded[i*chunkSize:(i+1)*chunkSize])
	}
	return chunks
}
