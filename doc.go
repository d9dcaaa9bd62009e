// Package lvtree is an in-memory toolkit for comparing trees: does one tree
// contain another, are two trees the same shape, and how many edits apart
// are they?
//
// 🚀 What is lvtree?
//
//	A small library of tree-comparison engines plus the plumbing around them:
//		• Subtree containment: memoized matching + Hopcroft–Karp (subiso)
//		• Isomorphism: centers, AHU canonical forms and hashes (canon)
//		• Edit distance: Zhang–Shasha with pluggable costs (ted)
//		• Corpus runs: bounded concurrent fan-out with tracing (batch)
//
// ✨ Why choose lvtree?
//
//   - Explicit stacks everywhere – deep trees never blow the call stack
//   - Validated input – malformed trees fail before any engine runs
//   - Deterministic – identity keys, ordering and results never depend on
//     map iteration
//   - Interoperable – gonum adapters, YAML/JSON documents and a CLI
//
// Packages:
//
//	tree/        rooted & unrooted tree model, constructors, validation errors
//	matching/    Hopcroft–Karp maximum bipartite matching
//	subiso/      unordered subtree containment and embeddings
//	canon/       centers, canonical forms, hashes, signatures
//	ted/         tree edit distance
//	builder/     deterministic tree generators (path, star, k-ary, random…)
//	converters/  gonum graph adapters
//	treeio/      YAML/JSON tree documents
//	batch/       corpus operations over an errgroup
//	cmd/lvtree   command-line front end
//
// Quick ASCII example:
//
//	  2            1
//	 / \          / \
//	3   4   ⊆    2   5
//	           / | \
//	          3  4  8
//
// the pattern on the left embeds under node 2 of the target; 8 stays
// unmatched.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
