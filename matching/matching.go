// SPDX-License-Identifier: MIT
// Package: lvtree/matching
//
// matching.go — Hopcroft–Karp maximum bipartite matching.

package matching

import (
	"errors"
	"fmt"
	"math"
)

// Unmatched marks a vertex without a partner in Result.PairLeft/PairRight.
const Unmatched = -1

// ErrBadVertex indicates an adjacency list that references a right vertex
// outside [0, nRight), or a negative nRight.
var ErrBadVertex = errors.New("matching: right vertex out of range")

const infDist = math.MaxInt

// Result is a maximum matching.
type Result struct {
	// Size is the number of matched pairs.
	Size int
	// PairLeft[u] is the right partner of left vertex u, or Unmatched.
	PairLeft []int
	// PairRight[v] is the left partner of right vertex v, or Unmatched.
	PairRight []int
}

// Saturates reports whether every left vertex is matched.
func (r Result) Saturates() bool { return r.Size == len(r.PairLeft) }

// Pairs returns the matched (left, right) pairs ordered by left vertex.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, 0, r.Size)
	for u, v := range r.PairLeft {
		if v != Unmatched {
			out = append(out, [2]int{u, v})
		}
	}
	return out
}

// Validate checks that every entry of adj lies in [0, nRight).
func Validate(adj [][]int, nRight int) error {
	if nRight < 0 {
		return fmt.Errorf("%w: nRight=%d", ErrBadVertex, nRight)
	}
	for u, row := range adj {
		for _, v := range row {
			if v < 0 || v >= nRight {
				return fmt.Errorf("%w: left %d lists %d (nRight=%d)", ErrBadVertex, u, v, nRight)
			}
		}
	}
	return nil
}

// HopcroftKarp returns a maximum matching of the bipartite graph whose left
// vertices are 0..len(adj)-1 and right vertices 0..nRight-1.
//
// Entries of adj outside [0, nRight) are skipped; call Validate first when
// adj comes from untrusted input. Duplicate entries are harmless.
//
// Implementation:
//   - Stage 1: Allocate PairLeft, PairRight, dist and DFS cursors.
//   - Stage 2: BFS from all free left vertices builds layer distances up to
//     the first layer that reaches a free right vertex; the phase ends if
//     none is reachable.
//   - Stage 3: For each free left vertex, an explicit-stack DFS walks only
//     edges to the next layer and flips the first shortest augmenting path.
//     Dead-end vertices get dist = ∞ so later searches skip them.
//
// Complexity: O(E·√V) time, O(V) extra space.
func HopcroftKarp(adj [][]int, nRight int) Result {
	if nRight < 0 {
		nRight = 0
	}
	nLeft := len(adj)
	res := Result{
		PairLeft:  filled(nLeft, Unmatched),
		PairRight: filled(nRight, Unmatched),
	}
	s := &state{
		adj:    adj,
		nRight: nRight,
		res:    &res,
		dist:   make([]int, nLeft),
		queue:  make([]int, 0, nLeft),
		cursor: make([]int, nLeft),
	}

	for s.layer() {
		clear(s.cursor)
		for u := 0; u < nLeft; u++ {
			if res.PairLeft[u] == Unmatched && s.augment(u) {
				res.Size++
			}
		}
	}

	return res
}

// state bundles the per-call working set.
type state struct {
	adj    [][]int
	nRight int
	res    *Result
	dist   []int
	limit  int
	queue  []int
	cursor []int
	stack  []int
	via    []int
}

// layer runs the BFS phase and reports whether some free right vertex is
// reachable through alternating paths. limit records the layer of the first
// left vertex adjacent to a free right vertex; deeper layers are not built.
func (s *state) layer() bool {
	s.queue = s.queue[:0]
	for u := range s.dist {
		if s.res.PairLeft[u] == Unmatched {
			s.dist[u] = 0
			s.queue = append(s.queue, u)
		} else {
			s.dist[u] = infDist
		}
	}

	s.limit = infDist
	for head := 0; head < len(s.queue); head++ {
		u := s.queue[head]
		if s.dist[u] > s.limit {
			break
		}
		for _, v := range s.adj[u] {
			if v < 0 || v >= s.nRight {
				continue
			}
			w := s.res.PairRight[v]
			if w == Unmatched {
				if s.limit == infDist {
					s.limit = s.dist[u]
				}
				continue
			}
			if s.dist[w] == infDist && s.dist[u] < s.limit {
				s.dist[w] = s.dist[u] + 1
				s.queue = append(s.queue, w)
			}
		}
	}
	return s.limit != infDist
}

// augment searches for a shortest augmenting path from the free left vertex
// root in the current layered graph and flips it when found. Free right
// vertices end a path only at layer s.limit.
func (s *state) augment(root int) bool {
	// stack[k] is a left vertex; via[k] the right vertex that led from
	// stack[k] to stack[k+1].
	s.stack = append(s.stack[:0], root)
	s.via = s.via[:0]

	for len(s.stack) > 0 {
		top := len(s.stack) - 1
		u := s.stack[top]
		row := s.adj[u]

		if s.cursor[u] == len(row) {
			s.dist[u] = infDist
			s.stack = s.stack[:top]
			if top > 0 {
				s.via = s.via[:top-1]
			}
			continue
		}

		v := row[s.cursor[u]]
		s.cursor[u]++
		if v < 0 || v >= s.nRight {
			continue
		}

		w := s.res.PairRight[v]
		if w == Unmatched {
			if s.dist[u] != s.limit {
				continue
			}
			s.via = append(s.via, v)
			for k, lu := range s.stack {
				rv := s.via[k]
				s.res.PairLeft[lu] = rv
				s.res.PairRight[rv] = lu
			}
			return true
		}
		if s.dist[u] < s.limit && s.dist[w] != infDist && s.dist[w] == s.dist[u]+1 {
			s.via = append(s.via, v)
			s.stack = append(s.stack, w)
		}
	}
	return false
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
