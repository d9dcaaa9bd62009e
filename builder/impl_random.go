// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_random.go - RandomTree(n) and Permuted(c).
//
// Contract:
//   - RandomTree: n ≥ 1, cfg.rng required (ErrNeedRandSource). Draws a
//     Prüfer sequence of length n-2 uniformly and decodes it, so every
//     labeled tree on n nodes is equally likely.
//   - Permuted: runs c, then renames every node through a random permutation.
//
// Determinism: fixed seed ⇒ identical trees.

package builder

import "fmt"

// RandomTree returns a Constructor for a uniformly random labeled tree on n
// nodes.
//
// Complexity: O(n) time and space (linear Prüfer decoding).
func RandomTree(n int) Constructor {
	return func(sk *skeleton, cfg builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomTree, n, MinTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomTree, ErrNeedRandSource)
		}
		first := sk.addNodes(n)
		if n == 1 {
			return nil
		}

		seq := make([]int, n-2)
		for i := range seq {
			seq[i] = cfg.rng.Intn(n)
		}
		for _, e := range decodePrufer(seq, n) {
			sk.addEdge(first+e[0], first+e[1])
		}
		return nil
	}
}

// decodePrufer turns a Prüfer sequence over 0..n-1 into the n-1 tree edges.
// The smallest current leaf is tracked with a forward-only pointer, giving
// linear time without a heap.
func decodePrufer(seq []int, n int) [][2]int {
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	edges := make([][2]int, 0, n-1)
	for _, v := range seq {
		edges = append(edges, [2]int{leaf, v})
		degree[v]--
		if degree[v] == 1 && v < ptr {
			leaf = v
			continue
		}
		ptr++
		for degree[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}
	return append(edges, [2]int{leaf, n - 1})
}

// Permuted returns a Constructor that runs c and then renames its nodes by a
// random permutation drawn from cfg.rng. The result is isomorphic to c's tree.
func Permuted(c Constructor) Constructor {
	return func(sk *skeleton, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", MethodPermuted, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodPermuted, ErrNeedRandSource)
		}
		inner := &skeleton{}
		if err := c(inner, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodPermuted, err)
		}
		perm := cfg.rng.Perm(inner.n)
		first := sk.addNodes(inner.n)
		for _, e := range inner.edges {
			sk.addEdge(first+perm[e[0]], first+perm[e[1]])
		}
		return nil
	}
}
