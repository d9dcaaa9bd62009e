// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// constants.go — method tags and parameter minima shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	MethodPath        = "Path"
	MethodStar        = "Star"
	MethodCaterpillar = "Caterpillar"
	MethodKAry        = "KAry"
	MethodRandomTree  = "RandomTree"
	MethodPermuted    = "Permuted"
)

// MinTreeNodes is the smallest valid tree: a single node.
const MinTreeNodes = 1

// MinArity is the smallest branching factor for KAry.
const MinArity = 1

// MaxKAryNodes caps KAry output so that k^depth cannot overflow silently.
const MaxKAryNodes = 1 << 24
