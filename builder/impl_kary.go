// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_kary.go - implementation of KAry(k, depth).
//
// Contract:
//   - k ≥ 1 and depth ≥ 0 (else ErrTooFewVertices).
//   - Breadth-first numbering: the children of node i are k·i+1 .. k·i+k.
//   - Trees above MaxKAryNodes nodes are rejected with ErrConstructFailed.
//
// Complexity: O(n) time and space, n = (k^(depth+1)-1)/(k-1).

package builder

import "fmt"

// KAry returns a Constructor for the complete k-ary tree of the given depth
// (depth 0 is a single node).
func KAry(k, depth int) Constructor {
	return func(sk *skeleton, _ builderConfig) error {
		if k < MinArity {
			return fmt.Errorf("%s: k=%d < min=%d: %w", MethodKAry, k, MinArity, ErrTooFewVertices)
		}
		if depth < 0 {
			return fmt.Errorf("%s: depth=%d < 0: %w", MethodKAry, depth, ErrTooFewVertices)
		}

		n, level := 0, 1
		for d := 0; d <= depth; d++ {
			n += level
			if n > MaxKAryNodes {
				return fmt.Errorf("%s: more than %d nodes: %w", MethodKAry, MaxKAryNodes, ErrConstructFailed)
			}
			level *= k
		}

		first := sk.addNodes(n)
		for child := 1; child < n; child++ {
			sk.addEdge(first+(child-1)/k, first+child)
		}
		return nil
	}
}
