// SPDX-License-Identifier: MIT

// Package subiso decides whether a pattern tree embeds into a target tree.
//
// An embedding maps the pattern root to some target node t and every pattern
// child to a distinct target child of its image with the same label,
// recursively. Sibling order is irrelevant and target nodes may keep
// unmatched children: this is subgraph (not strict subtree) isomorphism of
// rooted, labeled, unordered trees.
//
// Algorithm:
//
//  1. Walk the target breadth-first. Every node whose label equals the
//     pattern root's label is a candidate image of the root.
//  2. check(t, s) holds when labels are equal, s has no more children (and no
//     larger subtree) than t, and either s is a leaf or the bipartite graph
//     s-children × t-children (edge iff check(tc, sc)) has a matching that
//     saturates the s-children. The matching is computed with
//     matching.HopcroftKarp.
//  3. check is memoized on identity-key pairs (t, s). The memo lives for one
//     top-level call. Evaluation runs on an explicit frame stack and only
//     visits label-compatible child pairs, so tree height never threatens the
//     goroutine stack.
//
// Operations:
//
//   - Contains reports whether an embedding exists.
//   - Find returns one embedding (pattern node → target node).
//   - Roots / Count enumerate the target nodes that root an embedding.
//
// Complexity: O(|S|·|T|) check evaluations in the worst case, each paying a
// Hopcroft–Karp run of O(E·√V) on the children of the two nodes.
package subiso
