// SPDX-License-Identifier: MIT
// Package: lvtree/canon
//
// centers.go — center finding by leaf peeling.

package canon

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvtree/tree"
)

// Centers returns the center node indices of u in ascending order: one node
// when the diameter (in edges) is even, two adjacent nodes when it is odd.
// A single-node tree has center [0]; a two-node tree has both nodes.
//
// Implementation:
//   - Stage 1: Copy degrees and collect the current leaves.
//   - Stage 2: While more than two nodes remain, remove the whole leaf layer,
//     decrementing neighbor degrees; neighbors dropping to degree 1 form the
//     next layer.
//
// Complexity: O(n) time, O(n) space.
func Centers[K cmp.Ordered](u *tree.Unrooted[K]) []int {
	if u.Validate() != nil {
		return nil
	}
	n := u.Len()
	if n <= 2 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	degree := make([]int, n)
	var leaves []int
	for i := 0; i < n; i++ {
		degree[i] = u.Degree(i)
		if degree[i] == 1 {
			leaves = append(leaves, i)
		}
	}

	remaining := n
	for remaining > 2 {
		remaining -= len(leaves)
		var next []int
		for _, leaf := range leaves {
			for _, nb := range u.Neighbors(leaf) {
				degree[nb]--
				if degree[nb] == 1 {
					next = append(next, nb)
				}
			}
		}
		leaves = next
	}

	slices.Sort(leaves)
	return leaves
}
