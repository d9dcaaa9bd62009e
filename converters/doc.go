// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between lvtree trees and
// gonum graphs (gonum.org/v1/gonum/graph).
//
// Import:
//   - FromUndirected / FromUndirectedLabeled: graph.Undirected → *tree.Unrooted[int64]
//   - FromDirected: graph.Directed → *tree.Rooted[int64] (edges point parent → child)
//
// Export:
//   - ToUndirected: *tree.Unrooted[K] → *simple.UndirectedGraph (IDs = node indices)
//   - ToDirected: *tree.Rooted[L] → *simple.DirectedGraph (IDs = identity keys)
//
// Imported graphs are validated with the same rules as every other tree
// constructor, so a cyclic, disconnected or multi-rooted graph fails with the
// usual tree.ErrInvalidTree / tree.ErrInvalidInput classification.
package converters
