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

// Command fuzzinsertstemordered repeatedly builds the same set of
// (stem, subindex, value) triples into two trees, once inserted in
// ascending stem order and once in random order, and panics if their
// roots ever diverge. Root is defined to be insertion-order independent,
// so any divergence here is a bug in split/insert, not a flaky test.
package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	mathrand "math/rand/v2"
	"sort"

	bintree "github.com/ethereum/go-binary-tree"
)

func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)

		stems := make([][]byte, 1000)
		for i := range stems {
			stems[i] = make([]byte, bintree.StemSize)
			if _, err := rand.Read(stems[i]); err != nil {
				panic(err)
			}
		}

		type entry struct {
			key   [32]byte
			value []byte
		}
		var entries []entry
		for _, stem := range stems {
			for i := 0; i < 256; i++ {
				value := make([]byte, 32)
				if _, err := rand.Read(value); err != nil {
					panic(err)
				}
				var key [32]byte
				copy(key[:bintree.StemSize], stem)
				key[bintree.StemSize] = byte(i)
				entries = append(entries, entry{key, value})
			}
		}

		ordered := make([]entry, len(entries))
		copy(ordered, entries)
		sort.Slice(ordered, func(i, j int) bool {
			return bytes.Compare(ordered[i].key[:], ordered[j].key[:]) < 0
		})

		shuffled := make([]entry, len(entries))
		copy(shuffled, entries)
		mathrand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		treeOrdered := bintree.New()
		for _, e := range ordered {
			treeOrdered.Insert(e.key, e.value)
		}

		treeShuffled := bintree.New()
		for _, e := range shuffled {
			treeShuffled.Insert(e.key, e.value)
		}

		if treeOrdered.Root() != treeShuffled.Root() {
			panic("differing roots between ordered and shuffled insertion")
		}
	}
}
