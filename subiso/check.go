// SPDX-License-Identifier: MIT
// Package: lvtree/subiso
//
// check.go — memoized embedding check on an explicit frame stack.

package subiso

import (
	"github.com/katalvlaran/lvtree/matching"
	"github.com/katalvlaran/lvtree/tree"
)

// pair keys the memo: target node t, pattern node s.
type pair struct{ t, s int }

// matcher holds the state of one top-level call.
type matcher[L comparable] struct {
	p    *tree.Rooted[L]
	t    *tree.Rooted[L]
	memo map[pair]bool

	// subtree sizes by identity key
	pSize, tSize []int
}

// subtreeSizes returns the number of nodes below and including each node.
func subtreeSizes[L comparable](r *tree.Rooted[L]) []int {
	size := make([]int, r.Len())
	order := r.Preorder()
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		size[v]++
		if p := r.Parent(v); p >= 0 {
			size[p] += size[v]
		}
	}
	return size
}

// frame is a pending check(t, s) whose child pairs are being resolved.
// (i, j) is the next (pattern child, target child) position to inspect.
type frame struct {
	pair
	i, j int
}

// quick decides check(t, s) without looking at grandchildren when possible.
func (m *matcher[L]) quick(t, s int) (result, decided bool) {
	if m.t.Label(t) != m.p.Label(s) {
		return false, true
	}
	ds, dt := m.p.Degree(s), m.t.Degree(t)
	if ds > dt || m.pSize[s] > m.tSize[t] {
		return false, true
	}
	if ds == 0 {
		return true, true
	}
	return false, false
}

// check evaluates check(t, s) and memoizes every pair it resolves.
//
// Implementation:
//   - Stage 1: Answer from the memo or from quick().
//   - Stage 2: Otherwise push a frame. The top frame scans its
//     label-compatible child pairs; an unresolved pair that quick() cannot
//     settle gets its own frame and the scan resumes once it is popped.
//   - Stage 3: With every child pair resolved, the frame builds the bipartite
//     graph and records whether Hopcroft–Karp saturates the pattern children.
func (m *matcher[L]) check(t, s int) bool {
	key := pair{t: t, s: s}
	if v, ok := m.memo[key]; ok {
		return v
	}
	if v, ok := m.quick(t, s); ok {
		m.memo[key] = v
		return v
	}

	stack := []frame{{pair: key}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]
		sc := m.p.Children(f.s)
		tc := m.t.Children(f.t)

		descended := false
	scan:
		for ; f.i < len(sc); f.i++ {
			for ; f.j < len(tc); f.j++ {
				child := pair{t: tc[f.j], s: sc[f.i]}
				if m.t.Label(child.t) != m.p.Label(child.s) {
					continue
				}
				if _, ok := m.memo[child]; ok {
					continue
				}
				if v, ok := m.quick(child.t, child.s); ok {
					m.memo[child] = v
					continue
				}
				stack[top] = f
				stack = append(stack, frame{pair: child})
				descended = true
				break scan
			}
			f.j = 0
		}
		if descended {
			continue
		}

		res := matching.HopcroftKarp(m.bipartite(sc, tc), len(tc))
		m.memo[f.pair] = res.Size == len(sc)
		stack = stack[:top]
	}

	return m.memo[key]
}

// bipartite links pattern child i to target child j when their labels match
// and the memo records check(tc[j], sc[i]) as true. All label-compatible
// pairs must already be resolved.
func (m *matcher[L]) bipartite(sc, tc []int) [][]int {
	adj := make([][]int, len(sc))
	for i, s := range sc {
		for j, t := range tc {
			if m.t.Label(t) == m.p.Label(s) && m.memo[pair{t: t, s: s}] {
				adj[i] = append(adj[i], j)
			}
		}
	}
	return adj
}
