// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Nodes 0..n-1; edges (i-1, i) for i = 1..n-1 in increasing order.
//
// Complexity: O(n) time, O(n) space.

package builder

import "fmt"

// Path returns a Constructor that builds the path P_n.
func Path(n int) Constructor {
	return func(sk *skeleton, _ builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinTreeNodes, ErrTooFewVertices)
		}
		first := sk.addNodes(n)
		for i := 1; i < n; i++ {
			sk.addEdge(first+i-1, first+i)
		}
		return nil
	}
}
