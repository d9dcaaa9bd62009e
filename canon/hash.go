// SPDX-License-Identifier: MIT
// Package: lvtree/canon
//
// hash.go — polynomial AHU hash (pre-filter only).

package canon

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvtree/tree"
)

// Hash parameters.
const (
	HashBase    uint64 = 131
	HashModulus uint64 = 1_000_000_007
	hashSuffix  uint64 = 7
)

// HashRooted returns the polynomial hash of u rooted at node index root.
//
// Every node folds its children's hashes in ascending order:
//
//	h = seed                       (1, or a label seed for labeled trees)
//	h = (h·131 + c) mod (1e9+7)    for each child hash c
//	return (h·131 + 7) mod (1e9+7)
//
// The value depends only on the hashes of the children, never on string
// encodings. Collisions are possible. An invalid tree or a root outside
// [0, u.Len()) hashes to 0.
func HashRooted[K cmp.Ordered](u *tree.Unrooted[K], root int) uint64 {
	if !validRoot(u, root) {
		return 0
	}
	return hashRooted(u, root)
}

func hashRooted[K cmp.Ordered](u *tree.Unrooted[K], root int) uint64 {
	order, parent := rootedOrder(u, root)
	hs := make([]uint64, u.Len())
	var kids []uint64
	labeled := u.Labeled()
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		kids = kids[:0]
		for _, w := range u.Neighbors(v) {
			if w != parent[v] {
				kids = append(kids, hs[w])
			}
		}
		slices.Sort(kids)

		h := uint64(1)
		if labeled {
			h = labelSeed(u.Label(v))
		}
		for _, c := range kids {
			h = (h*HashBase + c) % HashModulus
		}
		hs[v] = (h*HashBase + hashSuffix) % HashModulus
	}
	return hs[root]
}

// labelSeed folds a label into [1, HashModulus) with the same polynomial.
func labelSeed(label string) uint64 {
	h := uint64(1)
	for i := 0; i < len(label); i++ {
		h = (h*HashBase + uint64(label[i]) + 1) % HashModulus
	}
	if h == 0 {
		h = 1
	}
	return h
}

// Hash returns the minimum of HashRooted over the centers of u, so it does
// not depend on which center is chosen. Isomorphic trees hash equal.
func Hash[K cmp.Ordered](u *tree.Unrooted[K]) uint64 {
	if u.Validate() != nil {
		return 0
	}
	var best uint64
	for i, c := range Centers(u) {
		if h := hashRooted(u, c); i == 0 || h < best {
			best = h
		}
	}
	return best
}
