// SPDX-License-Identifier: MIT
// Package: lvtree/treeio
//
// decode.go — reading documents and turning them into trees.

package treeio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/tree"
)

// Decode reads the first document of r.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("treeio: decode: %w", err)
	}
	if d.Kind == "" {
		return nil, fmt.Errorf("%w: missing kind", ErrUnknownKind)
	}
	return &d, nil
}

// DecodeAll reads every document of r, in order.
func DecodeAll(r io.Reader) ([]*Document, error) {
	dec := yaml.NewDecoder(r)
	var docs []*Document
	for {
		var d Document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("treeio: document %d: %w", len(docs), err)
		}
		if d.Kind == "" {
			return nil, fmt.Errorf("treeio: document %d: %w: missing kind", len(docs), ErrUnknownKind)
		}
		docs = append(docs, &d)
	}
	if len(docs) == 0 {
		return nil, ErrNoDocument
	}
	return docs, nil
}

// ReadFile decodes every document of the file at path.
func ReadFile(path string) ([]*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("treeio: %w", err)
	}
	defer f.Close()

	docs, err := DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Rooted builds the rooted tree of a rooted or matrix document. Matrix
// documents without labels are labeled by index.
func (d *Document) Rooted() (*tree.Rooted[string], error) {
	switch d.Kind {
	case KindRooted:
		return d.rootedFromNodes()
	case KindMatrix:
		return d.rootedFromMatrix()
	default:
		return nil, fmt.Errorf("%w: %s document is not rooted", ErrKindMismatch, d.Kind)
	}
}

func (d *Document) rootedFromNodes() (*tree.Rooted[string], error) {
	if d.Root == nil {
		return tree.NewRooted[string](nil)
	}
	type item struct {
		doc  *NodeDoc
		node *tree.Node[string]
	}
	root := &tree.Node[string]{Label: d.Root.Label}
	stack := []item{{d.Root, root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		it.node.Children = make([]*tree.Node[string], len(it.doc.Children))
		for i, c := range it.doc.Children {
			if c == nil {
				continue // NewRooted reports the nil child
			}
			it.node.Children[i] = &tree.Node[string]{Label: c.Label}
			stack = append(stack, item{c, it.node.Children[i]})
		}
	}
	return tree.NewRooted(root)
}

func (d *Document) rootedFromMatrix() (*tree.Rooted[string], error) {
	adj := make([][]bool, len(d.Matrix))
	for i, row := range d.Matrix {
		adj[i] = make([]bool, len(row))
		for j, v := range row {
			adj[i][j] = v != 0
		}
	}

	labels := make([]string, len(adj))
	switch {
	case d.Labels == nil:
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	case d.Labels.ByID != nil:
		return nil, fmt.Errorf("%w: matrix labels must be a sequence", ErrLabelShape)
	default:
		labels = d.Labels.ByIndex
	}
	return tree.FromParentMatrixLabeled(adj, labels)
}

// Unrooted builds the undirected tree of a document.
//
// For unrooted documents identifiers are the declared node names. Rooted
// and matrix documents are first built with Rooted; their identifiers are
// identity keys in decimal and their labels carry over.
func (d *Document) Unrooted() (*tree.Unrooted[string], error) {
	if d.Kind != KindUnrooted {
		r, err := d.Rooted()
		if err != nil {
			return nil, err
		}
		return fromRooted(r)
	}

	adj := make(map[string][]string, len(d.Nodes)+len(d.Edges)+1)
	for _, k := range d.Nodes {
		if _, ok := adj[k]; !ok {
			adj[k] = nil
		}
	}
	for _, e := range d.Edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	var labels map[string]string
	if d.Labels != nil {
		if d.Labels.ByIndex != nil {
			return nil, fmt.Errorf("%w: unrooted labels must be a mapping", ErrLabelShape)
		}
		labels = d.Labels.ByID
		if labels == nil {
			labels = map[string]string{}
		}
	}
	return tree.NewLabeledUnrooted(adj, labels)
}

func fromRooted(r *tree.Rooted[string]) (*tree.Unrooted[string], error) {
	adj := make(map[string][]string, r.Len())
	labels := make(map[string]string, r.Len())
	for id := 0; id < r.Len(); id++ {
		k := strconv.Itoa(id)
		labels[k] = r.Label(id)
		if _, ok := adj[k]; !ok {
			adj[k] = nil
		}
		for _, c := range r.Children(id) {
			ck := strconv.Itoa(c)
			adj[k] = append(adj[k], ck)
			adj[ck] = append(adj[ck], k)
		}
	}
	return tree.NewLabeledUnrooted(adj, labels)
}
