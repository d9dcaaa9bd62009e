// SPDX-License-Identifier: MIT
// Package: lvtree/canon
//
// rooted.go — canonical forms for rooted trees.

package canon

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// RootedForm returns the AHU encoding of r at its root, with every label
// rendered by fmt.Sprint. Rooted trees share a form iff they are isomorphic
// as rooted, labeled, unordered trees.
func RootedForm[L comparable](r *tree.Rooted[L]) string {
	if r.Validate() != nil {
		return ""
	}
	u := r.UnrootedWithLabels(func(l L) string { return fmt.Sprint(l) })
	return encode(u, r.Root(), true)
}

// AreRootedIsomorphic reports whether a and b are isomorphic as rooted,
// labeled trees with unordered children.
func AreRootedIsomorphic[L comparable](a, b *tree.Rooted[L]) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, err
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	return RootedForm(a) == RootedForm(b), nil
}

type validator interface{ Validate() error }

func validatePair(a, b validator) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("canon: first tree: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("canon: second tree: %w", err)
	}
	return nil
}
