// SPDX-License-Identifier: MIT
// Package: lvtree/ted
//
// ted.go — Zhang–Shasha tree edit distance.

package ted

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Distance returns the unit-cost edit distance between a and b.
//
// Errors: a nil or empty tree yields a *tree.InvalidTreeError.
func Distance[L comparable](a, b *tree.Rooted[L]) (int, error) {
	res, err := Compute(a, b, UnitCosts[L]())
	if err != nil {
		return 0, err
	}
	return res.Distance(), nil
}

// DistanceMatrix is Distance for trees given as parent matrices (entry (i, j)
// true ⇒ i is the parent of j). Nodes are labeled by their matrix index, so
// a substitution is free only between nodes with the same index.
func DistanceMatrix(a, b [][]bool) (int, error) {
	ta, err := tree.FromParentMatrix(a)
	if err != nil {
		return 0, fmt.Errorf("ted: first matrix: %w", err)
	}
	tb, err := tree.FromParentMatrix(b)
	if err != nil {
		return 0, fmt.Errorf("ted: second matrix: %w", err)
	}
	return Distance(ta, tb)
}

// Result holds the tree-distance table of one Compute call.
type Result struct {
	td    [][]int
	postA []int // identity key -> postorder position (1-based)
	postB []int
	n, m  int
}

// Distance returns the edit distance between the two whole trees.
func (r *Result) Distance() int { return r.td[r.n][r.m] }

// Subtree returns the edit distance between the subtree of A rooted at
// identity key i and the subtree of B rooted at identity key j.
func (r *Result) Subtree(i, j int) int { return r.td[r.postA[i]][r.postB[j]] }

// Compute runs Zhang–Shasha on a and b with the given costs.
//
// Implementation:
//   - Stage 1: Validate both trees; index each in postorder with leftmost
//     leaves and keyroots.
//   - Stage 2: Price every deletion, insertion and substitution once,
//     rejecting negative costs (ErrNegativeCost).
//   - Stage 3: Fill forest distances for every keyroot pair; td is filled as
//     a byproduct.
//
// Complexity: see the package documentation.
func Compute[L comparable](a, b *tree.Rooted[L], costs Costs[L]) (*Result, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("ted: first tree: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("ted: second tree: %w", err)
	}
	costs = costs.normalize()

	ia, ib := newIndex(a), newIndex(b)
	n, m := len(ia.order)-1, len(ib.order)-1

	del := make([]int, n+1)
	for x := 1; x <= n; x++ {
		if del[x] = costs.Delete(a.Label(ia.order[x])); del[x] < 0 {
			return nil, fmt.Errorf("%w: delete %v = %d", ErrNegativeCost, a.Label(ia.order[x]), del[x])
		}
	}
	ins := make([]int, m+1)
	for y := 1; y <= m; y++ {
		if ins[y] = costs.Insert(b.Label(ib.order[y])); ins[y] < 0 {
			return nil, fmt.Errorf("%w: insert %v = %d", ErrNegativeCost, b.Label(ib.order[y]), ins[y])
		}
	}
	sub := newTable(n+1, m+1)
	for x := 1; x <= n; x++ {
		la := a.Label(ia.order[x])
		for y := 1; y <= m; y++ {
			lb := b.Label(ib.order[y])
			if sub[x][y] = costs.Substitute(la, lb); sub[x][y] < 0 {
				return nil, fmt.Errorf("%w: substitute %v→%v = %d", ErrNegativeCost, la, lb, sub[x][y])
			}
		}
	}

	td := newTable(n+1, m+1)
	fd := newTable(n+1, m+1)
	for _, i := range ia.keyroots {
		for _, j := range ib.keyroots {
			forest(i, j, ia.left, ib.left, del, ins, sub, td, fd)
		}
	}

	return &Result{td: td, postA: ia.post, postB: ib.post, n: n, m: m}, nil
}

// forest fills fd over l(i)..i × l(j)..j and records td for every pair of
// subtree roots whose leftmost leaves coincide with the range starts.
func forest(i, j int, lA, lB, del, ins []int, sub, td, fd [][]int) {
	li, lj := lA[i], lB[j]

	fd[li-1][lj-1] = 0
	for x := li; x <= i; x++ {
		fd[x][lj-1] = fd[x-1][lj-1] + del[x]
	}
	for y := lj; y <= j; y++ {
		fd[li-1][y] = fd[li-1][y-1] + ins[y]
	}

	for x := li; x <= i; x++ {
		for y := lj; y <= j; y++ {
			best := min(fd[x-1][y]+del[x], fd[x][y-1]+ins[y])
			if lA[x] == li && lB[y] == lj {
				best = min(best, fd[x-1][y-1]+sub[x][y])
				fd[x][y] = best
				td[x][y] = best
				continue
			}
			fd[x][y] = min(best, fd[lA[x]-1][lB[y]-1]+td[x][y])
		}
	}
}

func newTable(rows, cols int) [][]int {
	backing := make([]int, rows*cols)
	t := make([][]int, rows)
	for r := range t {
		t[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return t
}
