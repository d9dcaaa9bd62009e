// SPDX-License-Identifier: MIT
// Package: lvtree/treeio
//
// document.go — document model and errors.

package treeio

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for a missing or unsupported kind field.
	ErrUnknownKind = errors.New("treeio: unknown document kind")

	// ErrKindMismatch is returned when a document is asked for a tree shape
	// its kind cannot provide.
	ErrKindMismatch = errors.New("treeio: document kind does not fit")

	// ErrLabelShape is returned when labels are a mapping where a sequence is
	// expected, or the other way round.
	ErrLabelShape = errors.New("treeio: labels have the wrong shape")

	// ErrNoDocument is returned when a stream holds no document.
	ErrNoDocument = errors.New("treeio: no document")
)

// Kind selects the tree representation of a document.
type Kind string

const (
	KindRooted   Kind = "rooted"
	KindUnrooted Kind = "unrooted"
	KindMatrix   Kind = "matrix"
)

// UnmarshalYAML accepts only the known kinds.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch Kind(s) {
	case KindRooted, KindUnrooted, KindMatrix:
		*k = Kind(s)
		return nil
	default:
		return fmt.Errorf("%w: %q (line %d)", ErrUnknownKind, s, value.Line)
	}
}

// NodeDoc is one node of a rooted document.
type NodeDoc struct {
	Label    string     `yaml:"label"`
	Children []*NodeDoc `yaml:"children,omitempty"`
}

// Labels holds node labels either by identifier (unrooted documents) or by
// index (matrix documents).
type Labels struct {
	ByID    map[string]string
	ByIndex []string
}

// UnmarshalYAML dispatches on the YAML node shape.
func (l *Labels) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		return value.Decode(&l.ByID)
	case yaml.SequenceNode:
		return value.Decode(&l.ByIndex)
	default:
		return fmt.Errorf("%w: line %d: want a mapping or a sequence", ErrLabelShape, value.Line)
	}
}

// MarshalYAML writes whichever form is set.
func (l Labels) MarshalYAML() (any, error) {
	if l.ByIndex != nil {
		return l.ByIndex, nil
	}
	return l.ByID, nil
}

// Document is one decoded tree document. Fields that do not belong to Kind
// are ignored.
type Document struct {
	Kind   Kind        `yaml:"kind"`
	Name   string      `yaml:"name,omitempty"`
	Root   *NodeDoc    `yaml:"root,omitempty"`
	Nodes  []string    `yaml:"nodes,omitempty"`
	Edges  [][2]string `yaml:"edges,omitempty"`
	Matrix [][]int     `yaml:"matrix,omitempty"`
	Labels *Labels     `yaml:"labels,omitempty"`
}
