// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_caterpillar.go - implementation of Caterpillar(spine, legs).
//
// Contract:
//   - spine ≥ 1 (else ErrTooFewVertices); legs ≥ 0 (else ErrTooFewVertices).
//   - Spine nodes 0..spine-1 form a path; then, spine node by spine node,
//     legs leaves are appended and attached to it.
//
// Complexity: O(spine·(legs+1)) time and space.

package builder

import "fmt"

// Caterpillar returns a Constructor for a caterpillar tree: a spine path
// with legs pendant leaves on every spine node.
func Caterpillar(spine, legs int) Constructor {
	return func(sk *skeleton, _ builderConfig) error {
		if spine < MinTreeNodes {
			return fmt.Errorf("%s: spine=%d < min=%d: %w", MethodCaterpillar, spine, MinTreeNodes, ErrTooFewVertices)
		}
		if legs < 0 {
			return fmt.Errorf("%s: legs=%d < 0: %w", MethodCaterpillar, legs, ErrTooFewVertices)
		}
		first := sk.addNodes(spine)
		for i := 1; i < spine; i++ {
			sk.addEdge(first+i-1, first+i)
		}
		for i := 0; i < spine; i++ {
			leaf := sk.addNodes(legs)
			for j := 0; j < legs; j++ {
				sk.addEdge(first+i, leaf+j)
			}
		}
		return nil
	}
}
