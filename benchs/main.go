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

// Command benchs measures insertion and root-computation time for a large
// tree: build one from a million keys, then time inserting and rehashing
// an additional ten thousand, repeated across several freshly generated
// key sets.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	bintree "github.com/ethereum/go-binary-tree"
)

func main() {
	benchmarkInsertAndRoot()
}

func benchmarkInsertAndRoot() {
	f, _ := os.Create("cpu.prof")
	g, _ := os.Create("mem.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()
	defer func() { _ = pprof.WriteHeapProfile(g) }()

	// Number of existing leaves in tree.
	n := 1000000
	// Leaves to be inserted afterwards.
	toInsert := 10000
	total := n + toInsert

	keys := make([][32]byte, n)
	toInsertKeys := make([][32]byte, toInsert)
	value := []byte("value")

	for i := 0; i < 4; i++ {
		// Generate set of keys once.
		for j := 0; j < total; j++ {
			var key [32]byte
			if _, err := rand.Read(key[:]); err != nil {
				panic(err)
			}
			if j < n {
				keys[j] = key
			} else {
				toInsertKeys[j-n] = key
			}
		}
		fmt.Printf("Generated key set %d\n", i)

		// Build a tree from the same keys multiple times.
		for j := 0; j < 5; j++ {
			tree := bintree.New()
			for _, k := range keys {
				tree.Insert(k, value)
			}
			tree.Root()

			// Now insert the 10k leaves and measure time.
			start := time.Now()
			for _, k := range toInsertKeys {
				tree.Insert(k, value)
			}
			tree.Root()
			elapsed := time.Since(start)
			fmt.Printf("Took %v to insert and root %d leaves\n", elapsed, toInsert)
		}
	}
}
