// SPDX-License-Identifier: MIT

// Package builder produces deterministic tree fixtures for tests, benchmarks,
// examples and the lvtree CLI.
//
// A Constructor emits nodes and edges into an internal skeleton; BuildTree
// validates the skeleton into a *tree.Unrooted[int] and BuildRooted orients it
// at a chosen root with string labels. Node identifiers are the indices the
// constructor assigned (0..n-1).
//
// The package offers the following key components:
//
//   - Topologies:
//     – Path(n):               P_n, edges (i-1, i).
//     – Star(n):               hub 0 with leaves 1..n-1.
//     – Caterpillar(s, l):     a spine path of s nodes, l leaves per spine node.
//     – KAry(k, depth):        complete k-ary tree in breadth-first numbering.
//     – RandomTree(n):         uniform labeled tree from a random Prüfer sequence.
//     – Permuted(c):           c with node indices shuffled (isomorphic copy).
//   - Configuration primitives:
//     – BuilderOption:         a function that mutates builderConfig before use.
//     – WithSeed / WithRand:   randomness for RandomTree and Permuted.
//     – WithLabelFn:           node labels (LabelFn schemes below).
//   - Label schemes (LabelFn implementations):
//     – DecimalLabel:          "0","1",…
//     – LetterLabel:           spreadsheet columns "A","Z","AA",…
//     – HexLabel:              "0","a","ff",…
//     – PrefixLabel(p):        p+"0", p+"1",…
//     – ConstLabel(s):         s for every node.
//     – ModLabel(k):           decimal i mod k (repeating labels).
//
// Guarantees:
//
//   - Same constructor, options and seed ⇒ identical trees.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves return sentinel errors
//     (ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed).
package builder
