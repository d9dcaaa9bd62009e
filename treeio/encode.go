// SPDX-License-Identifier: MIT
// Package: lvtree/treeio
//
// encode.go — writing trees as documents.

package treeio

import (
	"cmp"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/tree"
)

// EncodeRooted writes r as a rooted document; labels are rendered with
// fmt.Sprint.
func EncodeRooted[L comparable](w io.Writer, r *tree.Rooted[L]) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("treeio: encode: %w", err)
	}
	nodes := make([]*NodeDoc, r.Len())
	for id := range nodes {
		nodes[id] = &NodeDoc{Label: fmt.Sprint(r.Label(id))}
	}
	for id, nd := range nodes {
		for _, c := range r.Children(id) {
			nd.Children = append(nd.Children, nodes[c])
		}
	}
	return encode(w, &Document{Kind: KindRooted, Root: nodes[r.Root()]})
}

// EncodeUnrooted writes u as an unrooted document listing every node, so
// single-node trees survive a round trip. Identifiers are rendered with
// fmt.Sprint and must stay distinct.
func EncodeUnrooted[K cmp.Ordered](w io.Writer, u *tree.Unrooted[K]) error {
	if err := u.Validate(); err != nil {
		return fmt.Errorf("treeio: encode: %w", err)
	}
	doc := &Document{Kind: KindUnrooted, Nodes: make([]string, u.Len())}
	for i := range doc.Nodes {
		doc.Nodes[i] = fmt.Sprint(u.ID(i))
	}
	for _, e := range u.Edges() {
		doc.Edges = append(doc.Edges, [2]string{doc.Nodes[e[0]], doc.Nodes[e[1]]})
	}
	if u.Labeled() {
		doc.Labels = &Labels{ByID: make(map[string]string, u.Len())}
		for i, k := range doc.Nodes {
			doc.Labels.ByID[k] = u.Label(i)
		}
	}
	return encode(w, doc)
}

func encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("treeio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("treeio: encode: %w", err)
	}
	return nil
}
