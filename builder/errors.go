// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; they never panic at runtime.
//     Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, spine, k, depth)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a tree could not be assembled: a nil
// constructor, a root outside the tree, or emitted edges that do not form a
// tree (the wrapped tree error says which).
var ErrConstructFailed = errors.New("builder: construction failed")
