// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Hub is node 0; leaves 1..n-1, spokes emitted in increasing leaf order.
//
// Complexity: O(n) time, O(n) space.

package builder

import "fmt"

// Star returns a Constructor that builds a star with n nodes in total.
func Star(n int) Constructor {
	return func(sk *skeleton, _ builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinTreeNodes, ErrTooFewVertices)
		}
		hub := sk.addNodes(n)
		for i := 1; i < n; i++ {
			sk.addEdge(hub, hub+i)
		}
		return nil
	}
}
