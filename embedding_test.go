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

func address32Example() [32]byte {
	var a [32]byte
	for i := range a {
		a[i] = 0x42
	}
	return a
}

func TestTreeKeyForBasicData(t *testing.T) {
	t.Parallel()

	var addr Address
	copy(addr[:], address32Example()[12:])
	key := TreeKeyForBasicData(addr)
	if key[31] != BasicDataLeafKey {
		t.Fatalf("key[31] = %d, want %d", key[31], BasicDataLeafKey)
	}
}

func TestTreeKeyForCodeHash(t *testing.T) {
	t.Parallel()

	var addr Address
	copy(addr[:], address32Example()[12:])
	key := TreeKeyForCodeHash(addr)
	if key[31] != CodeHashLeafKey {
		t.Fatalf("key[31] = %d, want %d", key[31], CodeHashLeafKey)
	}
}

func TestTreeKeyForStorageSlotBelowThreshold(t *testing.T) {
	t.Parallel()

	var addr Address
	copy(addr[:], address32Example()[12:])

	stems := make(map[[StemSize]byte]bool)
	var headerKeys [HeaderStorageOffset][32]byte
	for slot := uint64(0); slot < HeaderStorageOffset; slot++ {
		key := TreeKeyForStorageSlot(addr, slot)
		headerKeys[slot] = key
		var stem [StemSize]byte
		copy(stem[:], key[:StemSize])
		stems[stem] = true
	}
	if len(stems) != 1 {
		t.Fatalf("header storage slots span %d distinct stems, want 1", len(stems))
	}
	for i, key := range headerKeys {
		if want := byte(i) + HeaderStorageOffset; key[31] != want {
			t.Fatalf("headerKeys[%d][31] = %d, want %d", i, key[31], want)
		}
	}

	outside := TreeKeyForStorageSlot(addr, HeaderStorageOffset)
	if outside == headerKeys[0] {
		t.Fatalf("slot at the threshold collided with slot 0's key")
	}
}

func TestTreeKeyForCodeChunk(t *testing.T) {
	t.Parallel()

	var addr Address
	copy(addr[:], address32Example()[12:])

	stems := make(map[[StemSize]byte]bool)
	var codeKeys [128][32]byte
	for chunk := uint64(0); chunk < 128; chunk++ {
		key := TreeKeyForCodeChunk(addr, chunk)
		codeKeys[chunk] = key
		var stem [StemSize]byte
		copy(stem[:], key[:StemSize])
		stems[stem] = true
	}
	if len(stems) != 1 {
		t.Fatalf("code chunks span %d distinct stems, want 1", len(stems))
	}
	for i, key := range codeKeys {
		if want := byte(i) + CodeOffset; key[31] != want {
			t.Fatalf("codeKeys[%d][31] = %d, want %d", i, key[31], want)
		}
	}

	outside := TreeKeyForCodeChunk(addr, 256)
	if outside == codeKeys[0] {
		t.Fatalf("chunk 256 collided with chunk 0's key")
	}
}

func TestAddressWiden(t *testing.T) {
	t.Parallel()

	var addr Address
	for i := range addr {
		addr[i] = 0xAB
	}
	widened := addr.Widen()
	for i := 0; i < 12; i++ {
		if widened[i] != 0 {
			t.Fatalf("widened[%d] = %#x, want 0", i, widened[i])
		}
	}
	for i := 12; i < 32; i++ {
		if widened[i] != 0xAB {
			t.Fatalf("widened[%d] = %#x, want 0xab", i, widened[i])
		}
	}
}
