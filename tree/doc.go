// SPDX-License-Identifier: MIT

// Package tree defines the immutable tree model shared by every lvtree engine.
//
// Two validated representations are provided:
//
//   - Rooted[L]: a labeled rooted tree with ordered children, stored as an
//     arena: every node owns a stable integer identity key 0..Len()-1 assigned
//     once at construction. Built from nested Node values (keys in preorder)
//     or from a parent adjacency matrix (key = matrix index).
//   - Unrooted[K]: an undirected tree built from a mapping node identifier →
//     neighbor identifiers. Keys follow the sorted identifier order, so equal
//     inputs always yield equal arenas.
//
// Identity keys, not labels, are what engines memoize on: labels may repeat,
// keys never do.
//
// Validation happens entirely inside the constructors. A structure with a
// cycle, more than one root, disconnected components, a node shared between
// two parents or zero nodes fails with *InvalidTreeError (errors.Is(err,
// ErrInvalidTree)). A non-square matrix, a node with more than one incoming
// edge, an asymmetric adjacency mapping or a mismatched label slice fails with
// *InvalidInputError (errors.Is(err, ErrInvalidInput)). Once built, a tree is
// never mutated, so it can be shared freely between goroutines.
//
// All traversals run on explicit stacks; tree height is bounded only by
// memory, never by the goroutine call stack.
//
// Quick ASCII example (Scenario tree used across the test-suite):
//
//	1
//	├─ 2
//	│  ├─ 3 ─ 7
//	│  ├─ 4 ─ 6
//	│  └─ 8
//	└─ 5
//
//	t, err := tree.NewRooted(tree.N(1,
//		tree.N(2, tree.N(3, tree.N(7)), tree.N(4, tree.N(6)), tree.N(8)),
//		tree.N(5),
//	))
package tree
