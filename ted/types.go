// SPDX-License-Identifier: MIT
// Package: lvtree/ted
//
// types.go — cost model and errors.

package ted

import "errors"

var (
	// ErrNegativeCost indicates that a cost function returned a negative value.
	ErrNegativeCost = errors.New("ted: negative edit cost")
)

// Costs prices the three edit operations. A nil field falls back to its
// unit-cost counterpart. Costs must be non-negative; for a symmetric distance
// Insert and Delete should agree and Substitute should be symmetric.
type Costs[L comparable] struct {
	// Insert prices inserting a node of tree B.
	Insert func(L) int
	// Delete prices deleting a node of tree A.
	Delete func(L) int
	// Substitute prices relabeling a node of A into a node of B.
	Substitute func(a, b L) int
}

// UnitCosts returns insert = delete = 1, substitute = 0 for equal labels
// and 1 otherwise.
func UnitCosts[L comparable]() Costs[L] {
	return Costs[L]{
		Insert:     unit[L],
		Delete:     unit[L],
		Substitute: unitSub[L],
	}
}

func unit[L comparable](L) int { return 1 }

func unitSub[L comparable](a, b L) int {
	if a == b {
		return 0
	}
	return 1
}

// normalize fills nil functions with unit costs.
func (c Costs[L]) normalize() Costs[L] {
	if c.Insert == nil {
		c.Insert = unit[L]
	}
	if c.Delete == nil {
		c.Delete = unit[L]
	}
	if c.Substitute == nil {
		c.Substitute = unitSub[L]
	}
	return c
}
