// SPDX-License-Identifier: MIT
// Package: lvtree/tree
//
// unrooted.go — undirected trees used before a root is chosen.
//
// Determinism:
//   - Node indices follow ascending identifier order.
//   - Neighbors(i) is sorted ascending by index.

package tree

import (
	"cmp"
	"slices"
)

// Unrooted is an immutable, validated undirected tree.
//
// Nodes are addressed by index in [0, Len()); ID and Index translate between
// indices and the caller's identifiers. Labels are optional strings consumed
// by the labeled canonical form.
type Unrooted[K cmp.Ordered] struct {
	ids    []K
	index  map[K]int
	adj    [][]int
	labels []string
}

// NewUnrooted validates an adjacency mapping (identifier → neighbor
// identifiers) and builds the tree.
//
// Every edge must be listed from both endpoints. Errors:
//   - InvalidTree: no nodes, self-loop, duplicate edge, cycle, disconnected
//     components.
//   - InvalidInput: a neighbor that is not a key of adj, an edge listed from
//     one endpoint only.
//
// Complexity: O(n log n + Σdeg·α(n)) time, O(n + Σdeg) space.
func NewUnrooted[K cmp.Ordered](adj map[K][]K) (*Unrooted[K], error) {
	return NewLabeledUnrooted(adj, nil)
}

// NewLabeledUnrooted is NewUnrooted with per-node string labels. Nodes absent
// from labels get the empty label; a label for an undeclared node is
// InvalidInput. A nil labels map yields an unlabeled tree.
func NewLabeledUnrooted[K cmp.Ordered](adj map[K][]K, labels map[K]string) (*Unrooted[K], error) {
	n := len(adj)
	if n == 0 {
		return nil, treeErr(ReasonEmpty, nil)
	}

	u := &Unrooted[K]{
		ids:   make([]K, 0, n),
		index: make(map[K]int, n),
		adj:   make([][]int, n),
	}
	for k := range adj {
		u.ids = append(u.ids, k)
	}
	slices.Sort(u.ids)
	for i, k := range u.ids {
		u.index[k] = i
	}

	// Stage 1: translate neighbor lists, rejecting unknown ids, loops, duplicates.
	for i, k := range u.ids {
		nbrs := make([]int, 0, len(adj[k]))
		for _, nk := range adj[k] {
			j, ok := u.index[nk]
			if !ok {
				return nil, inputErr(ReasonUnknownNode, "neighbor %v of node %v", nk, k)
			}
			if j == i {
				return nil, treeErr(ReasonSelfLoop, k)
			}
			nbrs = append(nbrs, j)
		}
		slices.Sort(nbrs)
		for x := 1; x < len(nbrs); x++ {
			if nbrs[x] == nbrs[x-1] {
				return nil, treeErr(ReasonDuplicateEdge, k)
			}
		}
		u.adj[i] = nbrs
	}

	// Stage 2: every u→v needs its v→u twin.
	for i, nbrs := range u.adj {
		for _, j := range nbrs {
			if _, found := slices.BinarySearch(u.adj[j], i); !found {
				return nil, inputErr(ReasonAsymmetric, "edge %v-%v listed from %v only", u.ids[i], u.ids[j], u.ids[i])
			}
		}
	}

	// Stage 3: acyclic + connected via union-find over each edge once.
	uf := newUnionFind(n)
	for i, nbrs := range u.adj {
		for _, j := range nbrs {
			if j < i {
				continue
			}
			if !uf.union(i, j) {
				return nil, treeErr(ReasonCycle, u.ids[j])
			}
		}
	}
	if uf.sets > 1 {
		return nil, treeErr(ReasonDisconnected, nil)
	}

	if labels != nil {
		u.labels = make([]string, n)
		for k, l := range labels {
			i, ok := u.index[k]
			if !ok {
				return nil, inputErr(ReasonUnknownNode, "label for node %v", k)
			}
			u.labels[i] = l
		}
	}

	return u, nil
}

// UnrootedFromEdges builds a tree from an explicit edge list. nodes may list
// isolated identifiers (needed for a single-node tree) and may be nil when
// every node appears in some edge. Each edge must appear once, in either
// orientation.
func UnrootedFromEdges[K cmp.Ordered](nodes []K, edges [][2]K) (*Unrooted[K], error) {
	adj := make(map[K][]K, len(nodes)+len(edges)+1)
	for _, k := range nodes {
		if _, ok := adj[k]; !ok {
			adj[k] = nil
		}
	}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return NewUnrooted(adj)
}

// Validate reports whether u can be handed to an engine.
func (u *Unrooted[K]) Validate() error {
	if u == nil || len(u.ids) == 0 {
		return treeErr(ReasonEmpty, nil)
	}
	return nil
}

// Len returns the number of nodes.
func (u *Unrooted[K]) Len() int { return len(u.ids) }

// Neighbors returns the sorted neighbor indices of node i. The slice is
// shared with the tree and must not be modified.
func (u *Unrooted[K]) Neighbors(i int) []int { return u.adj[i] }

// Degree returns the number of neighbors of node i.
func (u *Unrooted[K]) Degree(i int) int { return len(u.adj[i]) }

// ID returns the caller identifier of node i.
func (u *Unrooted[K]) ID(i int) K { return u.ids[i] }

// Index returns the index of identifier k.
func (u *Unrooted[K]) Index(k K) (int, bool) {
	i, ok := u.index[k]
	return i, ok
}

// Labeled reports whether the tree carries node labels.
func (u *Unrooted[K]) Labeled() bool { return u.labels != nil }

// Label returns the label of node i ("" for unlabeled trees).
func (u *Unrooted[K]) Label(i int) string {
	if u.labels == nil {
		return ""
	}
	return u.labels[i]
}

// Edges returns every edge once as an index pair (lo, hi), sorted.
func (u *Unrooted[K]) Edges() [][2]int {
	out := make([][2]int, 0, len(u.ids)-1)
	for i, nbrs := range u.adj {
		for _, j := range nbrs {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Root orients u at node root and returns the rooted tree. Children are
// ordered by ascending index; the label of each node is its identifier.
func (u *Unrooted[K]) Root(root int) (*Rooted[K], error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if root < 0 || root >= len(u.ids) {
		return nil, inputErr(ReasonUnknownNode, "root index %d", root)
	}
	n := len(u.ids)
	r := &Rooted[K]{
		labels:   append([]K(nil), u.ids...),
		children: make([][]int, n),
		parent:   make([]int, n),
		root:     root,
	}
	r.parent[root] = -1
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range u.adj[v] {
			if w == r.parent[v] {
				continue
			}
			r.parent[w] = v
			r.children[v] = append(r.children[v], w)
			stack = append(stack, w)
		}
	}
	return r, nil
}
