// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn = nil (unlabeled unrooted trees; DecimalLabel for rooted output)
//   • rng     = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node label strategy: index -> label. nil means "no labels".
	labelFn LabelFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rootedLabel returns the label function used for rooted output.
func (c builderConfig) rootedLabel() LabelFn {
	if c.labelFn == nil {
		return DecimalLabel
	}
	return c.labelFn
}
