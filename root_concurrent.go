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

import "golang.org/x/sync/errgroup"

// concurrentFanoutDepth bounds how many levels below the root get their own
// goroutine. Below it, subtrees are small enough that scheduling overhead
// would outweigh the benefit, so hashing falls back to the sequential walk.
const concurrentFanoutDepth = 4

// RootConcurrent computes the same digest as Root, parallelizing the hash
// computation of the subtrees near the root. It is safe to call only when
// no concurrent Insert is in flight, exactly like Root.
func (t *Tree) RootConcurrent() [32]byte {
	return hashConcurrent(t.root, 0)
}

// hashConcurrent mirrors node.hash but spawns a goroutine per child while
// depth is within the fan-out budget, and joins them with an errgroup
// purely for its wait semantics — no step here can
// actually fail, there is simply no result to short-circuit on.
func hashConcurrent(n *node, depth int) [32]byte {
	if n == nil {
		return zeroHash
	}
	if n.kind != kindInternal || depth >= concurrentFanoutDepth {
		return n.hash()
	}

	var left, right [32]byte
	var g errgroup.Group
	g.Go(func() error {
		left = hashConcurrent(n.left, depth+1)
		return nil
	})
	g.Go(func() error {
		right = hashConcurrent(n.right, depth+1)
		return nil
	})
	_ = g.Wait()

	return h2(left, right)
}
