// SPDX-License-Identifier: MIT
// Package: lvtree/tree
//
// validate.go — reusable validators and the union-find used for
// connectivity/cycle checks on undirected input.
//
// Validators return plain *InvalidInputError / *InvalidTreeError values so
// call sites can wrap uniformly with fmt.Errorf("...: %w", err).

package tree

// ValidateParentMatrix checks the encoding-level invariants of a parent
// matrix before any tree is assembled.
//
// Sequence: Empty → Square (every row) → at most one incoming edge per
// column → no self-loops. Root and cycle checks need the assembled
// parent/children lists and live in FromParentMatrixLabeled.
//
// Complexity: O(n²) time, O(1) space.
func ValidateParentMatrix(adj [][]bool) error {
	n := len(adj)
	if n == 0 {
		return treeErr(ReasonEmpty, nil)
	}
	for i, row := range adj {
		if len(row) != n {
			return inputErr(ReasonNonSquare, "row %d has %d columns, want %d", i, len(row), n)
		}
	}
	for j := 0; j < n; j++ {
		incoming := 0
		for i := 0; i < n; i++ {
			if adj[i][j] {
				incoming++
			}
		}
		if incoming > 1 {
			return inputErr(ReasonMultipleParents, "column %d has %d parents", j, incoming)
		}
	}
	for i := 0; i < n; i++ {
		if adj[i][i] {
			return treeErr(ReasonSelfLoop, i)
		}
	}
	return nil
}

// unionFind is a disjoint-set forest with path compression and union by size.
type unionFind struct {
	parent []int
	size   []int
	sets   int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n), sets: n}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// find returns the representative of x, compressing the path behind it.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// union merges the sets of x and y and reports false when they were already
// joined, i.e. when the edge x–y closes a cycle.
func (uf *unionFind) union(x, y int) bool {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return false
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.sets--
	return true
}
