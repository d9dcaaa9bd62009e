// SPDX-License-Identifier: MIT
// Package: lvtree/tree
//
// errors.go — sentinel errors and structured validation errors.
//
// Error policy:
//   - Callers branch with errors.Is(err, ErrInvalidTree) / errors.Is(err, ErrInvalidInput).
//   - Structured details are available through errors.As on *InvalidTreeError
//     and *InvalidInputError (Reason + location).
//   - Constructors never panic on user input.

package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTree classifies structural violations: cycles, several roots,
	// disconnected components, shared nodes or an empty structure.
	ErrInvalidTree = errors.New("tree: invalid tree")

	// ErrInvalidInput classifies malformed encodings: non-square matrices,
	// several incoming edges for one node, asymmetric adjacency, label count
	// mismatches, references to undeclared nodes.
	ErrInvalidInput = errors.New("tree: invalid input")
)

// Reason names the concrete rule a rejected input violated.
type Reason string

// Structural reasons (reported through *InvalidTreeError).
const (
	ReasonEmpty         Reason = "tree has no nodes"
	ReasonNilNode       Reason = "nil child node"
	ReasonSharedNode    Reason = "node is shared between two parents"
	ReasonCycle         Reason = "cycle detected"
	ReasonSelfLoop      Reason = "self-loop"
	ReasonDuplicateEdge Reason = "duplicate edge"
	ReasonNoRoot        Reason = "no root (every node has a parent)"
	ReasonMultipleRoots Reason = "more than one root"
	ReasonDisconnected  Reason = "disconnected components"
)

// Encoding reasons (reported through *InvalidInputError).
const (
	ReasonNonSquare       Reason = "matrix is not square"
	ReasonMultipleParents Reason = "node has more than one incoming edge"
	ReasonLabelCount      Reason = "label count does not match node count"
	ReasonAsymmetric      Reason = "adjacency is not symmetric"
	ReasonUnknownNode     Reason = "reference to an undeclared node"
)

// InvalidTreeError reports a structural violation found during validation.
// Node identifies the offending node (its identifier or matrix index) when one
// can be singled out; it is empty otherwise.
type InvalidTreeError struct {
	Reason Reason
	Node   string
}

func (e *InvalidTreeError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidTree, e.Reason)
	}
	return fmt.Sprintf("%v: %s at node %s", ErrInvalidTree, e.Reason, e.Node)
}

// Is makes errors.Is(err, ErrInvalidTree) hold for every *InvalidTreeError.
func (e *InvalidTreeError) Is(target error) bool { return target == ErrInvalidTree }

// InvalidInputError reports a malformed encoding found during validation.
// Where locates the problem ("row 3", "column 1", "node b", ...).
type InvalidInputError struct {
	Reason Reason
	Where  string
}

func (e *InvalidInputError) Error() string {
	if e.Where == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%v: %s (%s)", ErrInvalidInput, e.Reason, e.Where)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for every *InvalidInputError.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// treeErr builds an *InvalidTreeError; node may be nil.
func treeErr(reason Reason, node any) error {
	e := &InvalidTreeError{Reason: reason}
	if node != nil {
		e.Node = fmt.Sprint(node)
	}
	return e
}

// inputErr builds an *InvalidInputError with a formatted location.
func inputErr(reason Reason, format string, args ...any) error {
	return &InvalidInputError{Reason: reason, Where: fmt.Sprintf(format, args...)}
}
