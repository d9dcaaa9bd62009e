// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before
// the tree is emitted.
type BuilderOption func(*builderConfig)

// WithLabelFn sets the node labeling scheme. Panics on nil.
func WithLabelFn(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
