// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree
//
// load.go — reading trees from document files.

package main

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvtree/tree"
	"github.com/katalvlaran/lvtree/treeio"
)

// namedDoc is a document plus a display name for error messages.
type namedDoc struct {
	name string
	doc  *treeio.Document
}

// readDocs reads every document of every file, in order.
func (a *app) readDocs(paths ...string) ([]namedDoc, error) {
	var out []namedDoc
	for _, p := range paths {
		docs, err := treeio.ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, lo.Map(docs, func(d *treeio.Document, i int) namedDoc {
			if d.Name != "" {
				return namedDoc{name: d.Name, doc: d}
			}
			return namedDoc{name: fmt.Sprintf("%s#%d", p, i), doc: d}
		})...)
		a.log.Debug("read documents", slog.String("file", p), slog.Int("count", len(docs)))
	}
	return out, nil
}

// readOne reads a file that must hold exactly one document.
func (a *app) readOne(path string) (namedDoc, error) {
	docs, err := a.readDocs(path)
	if err != nil {
		return namedDoc{}, err
	}
	if len(docs) != 1 {
		return namedDoc{}, fmt.Errorf("%s: want 1 document, got %d", path, len(docs))
	}
	return docs[0], nil
}

func (a *app) readRooted(path string) (*tree.Rooted[string], error) {
	nd, err := a.readOne(path)
	if err != nil {
		return nil, err
	}
	r, err := nd.doc.Rooted()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nd.name, err)
	}
	return r, nil
}

func (a *app) readUnrooted(path string) (*tree.Unrooted[string], error) {
	nd, err := a.readOne(path)
	if err != nil {
		return nil, err
	}
	u, err := nd.doc.Unrooted()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nd.name, err)
	}
	return u, nil
}

func rootedAll(docs []namedDoc) ([]*tree.Rooted[string], error) {
	out := make([]*tree.Rooted[string], len(docs))
	for i, nd := range docs {
		r, err := nd.doc.Rooted()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nd.name, err)
		}
		out[i] = r
	}
	return out, nil
}

func unrootedAll(docs []namedDoc) ([]*tree.Unrooted[string], error) {
	out := make([]*tree.Unrooted[string], len(docs))
	for i, nd := range docs {
		u, err := nd.doc.Unrooted()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nd.name, err)
		}
		out[i] = u
	}
	return out, nil
}
