// SPDX-License-Identifier: MIT

// Package canon decides isomorphism of unrooted trees through canonical forms.
//
// Pipeline:
//
//  1. Centers: strip every leaf layer by layer ("onion peeling") until at
//     most two nodes remain. Those are the centers; a tree has one or two.
//  2. Encode: root the tree at a node and build the AHU encoding bottom-up.
//     Each node encodes as "(" + its children's encodings in sorted order +
//     ")", so sibling order never shows. Labeled trees put the node's quoted
//     label right after the opening parenthesis.
//  3. CanonicalForm: the smaller of the encodings rooted at each center.
//
// Two trees are isomorphic iff their node counts, center counts and canonical
// forms agree (AreIsomorphic). Labels take part only when both trees carry
// them; StructuralForm always ignores them.
//
// Hash is a polynomial signature over the same rooted shape, computed from
// children's hash values only (BASE 131, modulus 1e9+7). Different trees may
// collide, so a hash match is a pre-filter, never a verdict; Signature bundles
// the cheap fields with the exact form.
//
// RootedForm / AreRootedIsomorphic apply the encoding to *tree.Rooted values
// at their designated root.
//
// All traversals use explicit stacks. Encodings grow with the tree: a form
// is at most 2n parentheses plus labels.
package canon
