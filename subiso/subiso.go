// SPDX-License-Identifier: MIT
// Package: lvtree/subiso
//
// subiso.go — public entry points.

package subiso

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtree/matching"
	"github.com/katalvlaran/lvtree/tree"
)

// Embedding is a witness that a pattern embeds into a target.
type Embedding struct {
	// Root is the target node that the pattern root maps to.
	Root int
	// Mapping[s] is the target node assigned to pattern node s.
	// Distinct pattern nodes map to distinct target nodes.
	Mapping []int
}

// Contains reports whether some node of target roots a subtree containing an
// embedding of pattern.
//
// Errors: a nil or empty tree yields a *tree.InvalidTreeError.
func Contains[L comparable](pattern, target *tree.Rooted[L]) (bool, error) {
	m, err := newMatcher(pattern, target)
	if err != nil {
		return false, err
	}
	_, ok := m.first()
	return ok, nil
}

// Find returns an embedding of pattern into target rooted at the first
// matching target node in breadth-first order.
func Find[L comparable](pattern, target *tree.Rooted[L]) (Embedding, bool, error) {
	m, err := newMatcher(pattern, target)
	if err != nil {
		return Embedding{}, false, err
	}
	t, ok := m.first()
	if !ok {
		return Embedding{}, false, nil
	}
	return m.embedding(t), true, nil
}

// Roots returns every target node that roots an embedding of pattern, in
// ascending identity-key order.
func Roots[L comparable](pattern, target *tree.Rooted[L]) ([]int, error) {
	m, err := newMatcher(pattern, target)
	if err != nil {
		return nil, err
	}
	var out []int
	root := pattern.Root()
	for _, t := range m.candidates() {
		if m.check(t, root) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out, nil
}

// Count returns the number of target nodes that root an embedding of pattern.
func Count[L comparable](pattern, target *tree.Rooted[L]) (int, error) {
	roots, err := Roots(pattern, target)
	return len(roots), err
}

// newMatcher validates both trees and allocates a fresh memo.
func newMatcher[L comparable](pattern, target *tree.Rooted[L]) (*matcher[L], error) {
	if err := pattern.Validate(); err != nil {
		return nil, fmt.Errorf("subiso: pattern: %w", err)
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("subiso: target: %w", err)
	}
	return &matcher[L]{
		p:     pattern,
		t:     target,
		memo:  make(map[pair]bool),
		pSize: subtreeSizes(pattern),
		tSize: subtreeSizes(target),
	}, nil
}

// first returns the first target node in breadth-first order that roots an
// embedding.
func (m *matcher[L]) first() (int, bool) {
	root := m.p.Root()
	for _, t := range m.candidates() {
		if m.check(t, root) {
			return t, true
		}
	}
	return -1, false
}

// candidates lists target nodes carrying the pattern root's label, in
// breadth-first order.
func (m *matcher[L]) candidates() []int {
	want := m.p.Label(m.p.Root())
	var out []int
	queue := make([]int, 0, m.t.Len())
	queue = append(queue, m.t.Root())
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		if m.t.Label(v) == want {
			out = append(out, v)
		}
		queue = append(queue, m.t.Children(v)...)
	}
	return out
}

// embedding rebuilds a witness for check(t, root) == true by re-running the
// matching top-down over memoized results.
func (m *matcher[L]) embedding(t int) Embedding {
	mapping := make([]int, m.p.Len())
	for i := range mapping {
		mapping[i] = -1
	}
	root := m.p.Root()
	mapping[root] = t

	stack := []pair{{t: t, s: root}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sc := m.p.Children(cur.s)
		if len(sc) == 0 {
			continue
		}
		tc := m.t.Children(cur.t)
		res := matching.HopcroftKarp(m.bipartite(sc, tc), len(tc))
		for i, j := range res.PairLeft {
			mapping[sc[i]] = tc[j]
			stack = append(stack, pair{t: tc[j], s: sc[i]})
		}
	}
	return Embedding{Root: t, Mapping: mapping}
}
