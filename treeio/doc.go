// SPDX-License-Identifier: MIT

// Package treeio reads and writes trees as YAML documents (JSON input works
// too, being a YAML subset). Decoding uses gopkg.in/yaml.v3.
//
// Three document kinds mirror the three tree representations:
//
//	kind: rooted
//	root: {label: "2", children: [{label: "3"}, {label: "4"}]}
//	---
//	kind: unrooted
//	nodes: ["a", "b", "c"]      # optional unless a node has no edge
//	edges: [["a", "b"], ["b", "c"]]
//	labels: {a: "x"}            # optional
//	---
//	kind: matrix                # entry (i, j) ≠ 0 ⇒ i is the parent of j
//	matrix: [[0, 1], [0, 0]]
//	labels: ["r", "c"]          # optional, defaults to indices
//
// A stream may hold several documents separated by "---". Decoding checks
// only the document shape; tree validation happens in Document.Rooted and
// Document.Unrooted and reports the usual tree errors.
package treeio
