// SPDX-License-Identifier: MIT
// Package: lvtree/ted
//
// index.go — postorder, leftmost leaves and keyroots.

package ted

import "github.com/katalvlaran/lvtree/tree"

// index is the postorder view of one tree. Positions are 1-based; slot 0 is
// unused so that l(x)-1 is always a valid row.
type index struct {
	order    []int // position -> identity key
	post     []int // identity key -> position
	left     []int // position -> position of the leftmost leaf of its subtree
	keyroots []int // ascending positions
}

// newIndex walks r iteratively in postorder (children left to right).
func newIndex[L comparable](r *tree.Rooted[L]) *index {
	n := r.Len()
	ix := &index{
		order: make([]int, 1, n+1),
		post:  make([]int, n),
		left:  make([]int, n+1),
	}

	type frame struct{ v, next int }
	stack := []frame{{v: r.Root()}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		ch := r.Children(f.v)
		if f.next < len(ch) {
			c := ch[f.next]
			f.next++
			stack = append(stack, frame{v: c})
			continue
		}
		v := f.v
		stack = stack[:len(stack)-1]

		pos := len(ix.order)
		ix.order = append(ix.order, v)
		ix.post[v] = pos
		if len(ch) == 0 {
			ix.left[pos] = pos
		} else {
			ix.left[pos] = ix.left[ix.post[ch[0]]]
		}
	}

	// keyroot: no later position shares its leftmost leaf
	seen := make([]bool, n+1)
	for x := n; x >= 1; x-- {
		if !seen[ix.left[x]] {
			seen[ix.left[x]] = true
			ix.keyroots = append(ix.keyroots, x)
		}
	}
	for lo, hi := 0, len(ix.keyroots)-1; lo < hi; lo, hi = lo+1, hi-1 {
		ix.keyroots[lo], ix.keyroots[hi] = ix.keyroots[hi], ix.keyroots[lo]
	}
	return ix
}
