// SPDX-License-Identifier: MIT
// Package: lvtree/batch
//
// batch.go — corpus operations.

package batch

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvtree/canon"
	"github.com/katalvlaran/lvtree/subiso"
	"github.com/katalvlaran/lvtree/ted"
	"github.com/katalvlaran/lvtree/tree"
)

// validator is satisfied by every tree type.
type validator interface{ Validate() error }

func validateAll[T validator](trees []T) error {
	for i, t := range trees {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("batch: tree %d: %w", i, err)
		}
	}
	return nil
}

// PairwiseDistances returns the symmetric n×n unit-cost edit-distance matrix
// of trees. Only the upper triangle is computed; the diagonal is zero.
//
// Errors: ErrOptionViolation, validation errors of any tree (checked before
// work starts), ctx.Err() on cancellation.
func PairwiseDistances[L comparable](ctx context.Context, trees []*tree.Rooted[L], opts ...Option) ([][]int, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = validateAll(trees); err != nil {
		return nil, err
	}

	n := len(trees)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
	}
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	err = run(ctx, "pairwise", len(pairs), o, func(_ context.Context, k int) error {
		i, j := pairs[k][0], pairs[k][1]
		d, err := ted.Distance(trees[i], trees[j])
		if err != nil {
			return fmt.Errorf("batch: pair (%d, %d): %w", i, j, err)
		}
		dist[i][j], dist[j][i] = d, d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dist, nil
}

// IsomorphismClasses partitions the indices of trees into classes of
// mutually isomorphic trees. Labeled trees are compared with their labels,
// so a labeled and an unlabeled tree never share a class. Classes are
// ordered by their smallest index; indices inside a class ascend.
//
// Signatures are computed concurrently; grouping then buckets by the cheap
// signature fields and splits buckets by exact canonical form.
func IsomorphismClasses[K cmp.Ordered](ctx context.Context, trees []*tree.Unrooted[K], opts ...Option) ([][]int, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = validateAll(trees); err != nil {
		return nil, err
	}

	sigs := make([]canon.Signature, len(trees))
	err = run(ctx, "classes", len(trees), o, func(_ context.Context, i int) error {
		s, err := canon.Sign(trees[i])
		if err != nil {
			return fmt.Errorf("batch: tree %d: %w", i, err)
		}
		sigs[i] = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group(sigs), nil
}

// group assigns each signature to the first earlier class it equals.
func group(sigs []canon.Signature) [][]int {
	type bucketKey struct {
		nodes, centers int
		hash           uint64
	}
	buckets := make(map[bucketKey][]int) // key -> class ids
	var classes [][]int
	for i, s := range sigs {
		k := bucketKey{s.Nodes, s.Centers, s.Hash}
		placed := false
		for _, c := range buckets[k] {
			if sigs[classes[c][0]].Equal(s) {
				classes[c] = append(classes[c], i)
				placed = true
				break
			}
		}
		if !placed {
			buckets[k] = append(buckets[k], len(classes))
			classes = append(classes, []int{i})
		}
	}
	return classes
}

// Search returns, in ascending order, the indices of targets that contain
// pattern in the sense of subiso.Contains.
func Search[L comparable](ctx context.Context, pattern *tree.Rooted[L], targets []*tree.Rooted[L], opts ...Option) ([]int, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = pattern.Validate(); err != nil {
		return nil, fmt.Errorf("batch: pattern: %w", err)
	}
	if err = validateAll(targets); err != nil {
		return nil, err
	}

	found := make([]bool, len(targets))
	err = run(ctx, "search", len(targets), o, func(_ context.Context, i int) error {
		ok, err := subiso.Contains(pattern, targets[i])
		if err != nil {
			return fmt.Errorf("batch: target %d: %w", i, err)
		}
		found[i] = ok
		return nil
	})
	if err != nil {
		return nil, err
	}

	hits := make([]int, 0)
	for i, ok := range found {
		if ok {
			hits = append(hits, i)
		}
	}
	return hits, nil
}
