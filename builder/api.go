// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - A Constructor emits nodes and edges into a skeleton; BuildTree and
//     BuildRooted resolve options, run it and validate the result.
//   - Determinism: same constructor, options and seed ⇒ identical trees.
//   - Safety: constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Constructor emits a tree into sk using the resolved configuration.
// Constructors validate their parameters early and return sentinel errors.
type Constructor func(sk *skeleton, cfg builderConfig) error

// skeleton accumulates the nodes (0..n-1) and undirected edges emitted by a
// constructor.
type skeleton struct {
	n     int
	edges [][2]int
}

// addNodes reserves k new node indices and returns the first one.
func (s *skeleton) addNodes(k int) int {
	first := s.n
	s.n += k
	return first
}

func (s *skeleton) addEdge(u, v int) {
	s.edges = append(s.edges, [2]int{u, v})
}

// adjacency renders the skeleton as the mapping tree.NewUnrooted expects.
func (s *skeleton) adjacency() map[int][]int {
	adj := make(map[int][]int, s.n)
	for i := 0; i < s.n; i++ {
		adj[i] = nil
	}
	for _, e := range s.edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return adj
}

// BuildTree runs con and validates the emitted structure as an unrooted tree
// with integer identifiers 0..n-1. When WithLabelFn is set the tree carries
// labels fn(i).
//
// Errors:
//   - Constructor errors are wrapped as "BuildTree: %w".
//   - A nil constructor, or edges that do not form a tree, wrap
//     ErrConstructFailed (and the tree validation error).
func BuildTree(con Constructor, opts ...BuilderOption) (*tree.Unrooted[int], error) {
	if con == nil {
		return nil, fmt.Errorf("BuildTree: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	sk := &skeleton{}
	if err := con(sk, cfg); err != nil {
		return nil, fmt.Errorf("BuildTree: %w", err)
	}

	var labels map[int]string
	if cfg.labelFn != nil {
		labels = make(map[int]string, sk.n)
		for i := 0; i < sk.n; i++ {
			labels[i] = cfg.labelFn(i)
		}
	}
	u, err := tree.NewLabeledUnrooted(sk.adjacency(), labels)
	if err != nil {
		return nil, fmt.Errorf("BuildTree: %w: %w", ErrConstructFailed, err)
	}
	return u, nil
}

// BuildRooted runs con, orients the tree at node root and labels node i with
// fn(i) (WithLabelFn; DecimalLabel by default). Identity keys equal node
// indices; children are ordered by ascending index.
func BuildRooted(con Constructor, root int, opts ...BuilderOption) (*tree.Rooted[string], error) {
	u, err := BuildTree(con, opts...)
	if err != nil {
		return nil, err
	}
	r, err := u.Root(root)
	if err != nil {
		return nil, fmt.Errorf("BuildRooted: root %d: %w: %w", root, ErrConstructFailed, err)
	}
	label := newBuilderConfig(opts...).rootedLabel()
	return tree.MapLabels(r, func(id, _ int) string { return label(id) }), nil
}
