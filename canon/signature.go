// SPDX-License-Identifier: MIT
// Package: lvtree/canon
//
// signature.go — cacheable canonical artifacts.

package canon

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Signature captures everything AreIsomorphic looks at, so callers can cache
// it per tree and compare trees without re-encoding them.
type Signature struct {
	Nodes   int    `json:"nodes" yaml:"nodes"`
	Centers int    `json:"centers" yaml:"centers"`
	Hash    uint64 `json:"hash" yaml:"hash"`
	Form    string `json:"form" yaml:"form"`
}

// Sign computes the signature of u.
func Sign[K cmp.Ordered](u *tree.Unrooted[K]) (Signature, error) {
	if err := u.Validate(); err != nil {
		return Signature{}, fmt.Errorf("canon: %w", err)
	}
	return Signature{
		Nodes:   u.Len(),
		Centers: len(Centers(u)),
		Hash:    Hash(u),
		Form:    CanonicalForm(u),
	}, nil
}

// MayEqual compares only the cheap fields. False means the trees are
// certainly not isomorphic; true means they might be.
func (s Signature) MayEqual(o Signature) bool {
	return s.Nodes == o.Nodes && s.Centers == o.Centers && s.Hash == o.Hash
}

// Equal reports exact isomorphism of the signed trees.
func (s Signature) Equal(o Signature) bool {
	return s.Nodes == o.Nodes && s.Centers == o.Centers && s.Form == o.Form
}

// String renders the signature compactly.
func (s Signature) String() string {
	return fmt.Sprintf("n=%d c=%d h=%d %s", s.Nodes, s.Centers, s.Hash, s.Form)
}
