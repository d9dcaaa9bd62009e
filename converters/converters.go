// SPDX-License-Identifier: MIT
// Package: lvtree/converters
//
// converters.go — gonum graph adapters.

package converters

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvtree/tree"
)

// ErrNilGraph is returned when a nil graph is passed to an importer.
var ErrNilGraph = errors.New("converters: graph is nil")

// FromUndirected copies g into an unrooted tree keyed by gonum node IDs.
func FromUndirected(g graph.Undirected) (*tree.Unrooted[int64], error) {
	return FromUndirectedLabeled(g, nil)
}

// FromUndirectedLabeled is FromUndirected with node labels taken from
// label(n). A nil label yields an unlabeled tree.
//
// Complexity: O(n log n + Σdeg) plus the cost of g's iterators.
func FromUndirectedLabeled(g graph.Undirected, label func(graph.Node) string) (*tree.Unrooted[int64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	adj := make(map[int64][]int64)
	var labels map[int64]string
	if label != nil {
		labels = make(map[int64]string)
	}
	for _, n := range graph.NodesOf(g.Nodes()) {
		id := n.ID()
		nbrs := make([]int64, 0)
		for _, m := range graph.NodesOf(g.From(id)) {
			nbrs = append(nbrs, m.ID())
		}
		adj[id] = nbrs
		if label != nil {
			labels[id] = label(n)
		}
	}
	u, err := tree.NewLabeledUnrooted(adj, labels)
	if err != nil {
		return nil, fmt.Errorf("converters: undirected graph: %w", err)
	}
	return u, nil
}

// FromDirected copies g into a rooted tree. Edges must point from parent to
// child; the root is the only node without an incoming edge. Identity keys
// follow ascending node ID, children are ordered by ID and every node is
// labeled with its ID.
//
// Complexity: O(n log n + m) plus the cost of g's iterators.
func FromDirected(g graph.Directed) (*tree.Rooted[int64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)
	key := make(map[int64]int, len(ids))
	for i, id := range ids {
		key[id] = i
	}

	parents := make([]int, len(ids))
	for i, id := range ids {
		in := graph.NodesOf(g.To(id))
		switch len(in) {
		case 0:
			parents[i] = -1
		case 1:
			parents[i] = key[in[0].ID()]
		default:
			return nil, fmt.Errorf("converters: directed graph: %w", &tree.InvalidInputError{
				Reason: tree.ReasonMultipleParents,
				Where:  fmt.Sprintf("node %d has %d incoming edges", id, len(in)),
			})
		}
	}

	r, err := tree.FromParents(parents, ids)
	if err != nil {
		return nil, fmt.Errorf("converters: directed graph: %w", err)
	}
	return r, nil
}

// ToUndirected exports u as a gonum graph whose node IDs are u's node
// indices; translate back with u.ID.
func ToUndirected[K cmp.Ordered](u *tree.Unrooted[K]) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < u.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range u.Edges() {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return g
}

// ToDirected exports r as a gonum graph with parent → child edges; node IDs
// are identity keys.
func ToDirected[L comparable](r *tree.Rooted[L]) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for id := 0; id < r.Len(); id++ {
		g.AddNode(simple.Node(id))
	}
	for id := 0; id < r.Len(); id++ {
		for _, c := range r.Children(id) {
			g.SetEdge(simple.Edge{F: simple.Node(id), T: simple.Node(c)})
		}
	}
	return g
}
