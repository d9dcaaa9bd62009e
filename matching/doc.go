// SPDX-License-Identifier: MIT

// Package matching computes maximum matchings in bipartite graphs with the
// Hopcroft–Karp algorithm.
//
// A bipartite graph is given as a left-side adjacency list: adj[u] lists the
// right vertices (0..nRight-1) adjacent to left vertex u. Each phase
//
//  1. layers the graph by BFS from every free left vertex, stopping at the
//     first layer that reaches a free right vertex;
//  2. augments along vertex-disjoint shortest paths found by DFS restricted to
//     that layered graph.
//
// Phases repeat until no augmenting path exists, which happens after
// O(√V) phases, for O(E·√V) total time.
//
// All working state (pairings, layer distances, DFS cursors) is allocated
// per call, so concurrent calls never share anything. The DFS runs on an
// explicit stack.
//
// Example:
//
//	adj := [][]int{{0, 1}, {0}}
//	res := matching.HopcroftKarp(adj, 2)
//	// res.Size == 2, res.PairLeft == [1 0]
package matching
