// SPDX-License-Identifier: MIT
// Package: lvtree/tree
//
// rooted.go — labeled rooted trees with ordered children.
//
// Determinism:
//   - NewRooted assigns identity keys in preorder (root = 0).
//   - FromParentMatrix and FromParents keep input indices as identity keys;
//     children are ordered by increasing index.

package tree

import (
	"fmt"
	"slices"
)

// Node is the construction-time form of a labeled rooted tree: a label plus
// an ordered list of children. Nodes are consumed by NewRooted and are not
// referenced afterwards.
type Node[L comparable] struct {
	Label    L
	Children []*Node[L]
}

// N is shorthand for &Node{Label: label, Children: children}.
func N[L comparable](label L, children ...*Node[L]) *Node[L] {
	return &Node[L]{Label: label, Children: children}
}

// Rooted is an immutable, validated rooted tree stored as an arena.
//
// Every node is addressed by its identity key in [0, Len()). Children keep
// the order they were given in; engines that ignore sibling order (subiso,
// canon) simply do not look at it.
type Rooted[L comparable] struct {
	labels   []L
	children [][]int
	parent   []int
	root     int
}

// stackItem pairs a pending construction node with its parent's key.
type stackItem[L comparable] struct {
	node   *Node[L]
	parent int
}

// NewRooted validates root and converts it into an arena-indexed tree.
//
// Implementation:
//   - Stage 1: Reject a nil root (ReasonEmpty).
//   - Stage 2: Walk the structure with an explicit stack, assigning keys in
//     preorder and recording every *Node already seen.
//   - Stage 3: A pointer met twice is either an ancestor of the current node
//     (ReasonCycle) or a node shared by two parents (ReasonSharedNode).
//
// Complexity: O(n) time for valid input, O(n) space.
func NewRooted[L comparable](root *Node[L]) (*Rooted[L], error) {
	if root == nil {
		return nil, treeErr(ReasonEmpty, nil)
	}

	r := &Rooted[L]{}
	seen := make(map[*Node[L]]int)
	stack := []stackItem[L]{{node: root, parent: -1}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if k, dup := seen[it.node]; dup {
			if r.isAncestor(k, it.parent) {
				return nil, treeErr(ReasonCycle, k)
			}
			return nil, treeErr(ReasonSharedNode, k)
		}

		id := len(r.labels)
		seen[it.node] = id
		r.labels = append(r.labels, it.node.Label)
		r.parent = append(r.parent, it.parent)
		r.children = append(r.children, nil)
		if it.parent >= 0 {
			r.children[it.parent] = append(r.children[it.parent], id)
		}

		// push in reverse so the first child is popped (and numbered) first
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			c := it.node.Children[i]
			if c == nil {
				return nil, treeErr(ReasonNilNode, id)
			}
			stack = append(stack, stackItem[L]{node: c, parent: id})
		}
	}

	return r, nil
}

// isAncestor reports whether a is v or one of v's ancestors.
func (r *Rooted[L]) isAncestor(a, v int) bool {
	for ; v >= 0; v = r.parent[v] {
		if v == a {
			return true
		}
	}
	return false
}

// FromParentMatrix builds a rooted tree from an n×n matrix in which a true
// entry at (i, j) means "i is the parent of j". Node i keeps identity key i
// and is labeled with i, so label equality is identifier equality.
func FromParentMatrix(adj [][]bool) (*Rooted[int], error) {
	labels := make([]int, len(adj))
	for i := range labels {
		labels[i] = i
	}
	return FromParentMatrixLabeled(adj, labels)
}

// FromParentMatrixLabeled is FromParentMatrix with caller-supplied labels;
// labels[i] labels node i.
//
// Errors (in priority order):
//   - InvalidInput: non-square matrix, label count mismatch, a column with
//     more than one true entry.
//   - InvalidTree: zero nodes, self-loop, no root, several roots, nodes not
//     reachable from the root (they necessarily sit on a cycle).
//
// Complexity: O(n²) time, O(n) extra space.
func FromParentMatrixLabeled[L comparable](adj [][]bool, labels []L) (*Rooted[L], error) {
	if err := ValidateParentMatrix(adj); err != nil {
		return nil, err
	}
	n := len(adj)
	if len(labels) != n {
		return nil, inputErr(ReasonLabelCount, "%d labels for %d nodes", len(labels), n)
	}

	parent := make([]int, n)
	for j := range parent {
		parent[j] = -1
	}
	children := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] {
				parent[j] = i
				children[i] = append(children[i], j)
			}
		}
	}
	return assemble(parent, children, labels)
}

// FromParents builds a rooted tree from a parent list: parents[i] is the
// identity key of node i's parent, or -1 for the root. Node i keeps identity
// key i and label labels[i]; children are ordered by increasing key.
//
// Errors:
//   - InvalidInput: label count mismatch, a parent outside [-1, n).
//   - InvalidTree: zero nodes, self-loop, no root, several roots, cycles.
//
// Complexity: O(n) time and space.
func FromParents[L comparable](parents []int, labels []L) (*Rooted[L], error) {
	n := len(parents)
	if n == 0 {
		return nil, treeErr(ReasonEmpty, nil)
	}
	if len(labels) != n {
		return nil, inputErr(ReasonLabelCount, "%d labels for %d nodes", len(labels), n)
	}
	children := make([][]int, n)
	for j, p := range parents {
		switch {
		case p < -1 || p >= n:
			return nil, inputErr(ReasonUnknownNode, "parent %d of node %d", p, j)
		case p == j:
			return nil, treeErr(ReasonSelfLoop, j)
		case p >= 0:
			children[p] = append(children[p], j)
		}
	}
	return assemble(append([]int(nil), parents...), children, labels)
}

// assemble finds the single root and rejects nodes it cannot reach. parent
// and children are adopted; labels are copied.
func assemble[L comparable](parent []int, children [][]int, labels []L) (*Rooted[L], error) {
	n := len(parent)
	root := -1
	for j := 0; j < n; j++ {
		if parent[j] >= 0 {
			continue
		}
		if root >= 0 {
			return nil, treeErr(ReasonMultipleRoots, j)
		}
		root = j
	}
	if root < 0 {
		return nil, treeErr(ReasonNoRoot, nil)
	}

	// every non-root has exactly one parent, so anything unreachable from the
	// root must lie on a cycle
	visited := make([]bool, n)
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited[v] = true
		stack = append(stack, children[v]...)
	}
	for v := range visited {
		if !visited[v] {
			return nil, treeErr(ReasonCycle, v)
		}
	}

	return &Rooted[L]{
		labels:   append([]L(nil), labels...),
		children: children,
		parent:   parent,
		root:     root,
	}, nil
}

// Validate reports whether r can be handed to an engine: a nil tree is an
// empty structure and fails with ReasonEmpty.
func (r *Rooted[L]) Validate() error {
	if r == nil || len(r.labels) == 0 {
		return treeErr(ReasonEmpty, nil)
	}
	return nil
}

// Len returns the number of nodes.
func (r *Rooted[L]) Len() int { return len(r.labels) }

// Root returns the identity key of the root.
func (r *Rooted[L]) Root() int { return r.root }

// Label returns the label of node id.
func (r *Rooted[L]) Label(id int) L { return r.labels[id] }

// Labels returns a copy of all labels indexed by identity key.
func (r *Rooted[L]) Labels() []L { return append([]L(nil), r.labels...) }

// Children returns the ordered children of node id. The slice is shared with
// the tree and must not be modified.
func (r *Rooted[L]) Children(id int) []int { return r.children[id] }

// Parent returns the parent of node id, or -1 for the root.
func (r *Rooted[L]) Parent(id int) int { return r.parent[id] }

// Degree returns the number of children of node id.
func (r *Rooted[L]) Degree(id int) int { return len(r.children[id]) }

// Preorder returns identity keys in preorder (parent before children, children
// left to right).
func (r *Rooted[L]) Preorder() []int {
	order := make([]int, 0, len(r.labels))
	stack := []int{r.root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		ch := r.children[v]
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}
	return order
}

// Height returns the number of edges on the longest root-to-leaf path.
func (r *Rooted[L]) Height() int {
	depth := make([]int, len(r.labels))
	h := 0
	for _, v := range r.Preorder() {
		if p := r.parent[v]; p >= 0 {
			depth[v] = depth[p] + 1
		}
		if depth[v] > h {
			h = depth[v]
		}
	}
	return h
}

// MapLabels returns a tree with r's shape and identity keys in which node id
// is labeled f(id, r.Label(id)).
func MapLabels[L, M comparable](r *Rooted[L], f func(id int, label L) M) *Rooted[M] {
	out := &Rooted[M]{
		labels:   make([]M, len(r.labels)),
		children: r.children,
		parent:   r.parent,
		root:     r.root,
	}
	for id, l := range r.labels {
		out.labels[id] = f(id, l)
	}
	return out
}

// Unrooted returns the undirected tree underlying r. Node identifiers and
// indices both equal r's identity keys; labels are dropped.
func (r *Rooted[L]) Unrooted() *Unrooted[int] {
	return r.unrooted(nil)
}

// UnrootedWithLabels is Unrooted with every node labeled by format(label).
func (r *Rooted[L]) UnrootedWithLabels(format func(L) string) *Unrooted[int] {
	return r.unrooted(format)
}

func (r *Rooted[L]) unrooted(format func(L) string) *Unrooted[int] {
	n := len(r.labels)
	u := &Unrooted[int]{
		ids:   make([]int, n),
		index: make(map[int]int, n),
		adj:   make([][]int, n),
	}
	for v := 0; v < n; v++ {
		u.ids[v] = v
		u.index[v] = v
		for _, c := range r.children[v] {
			u.adj[v] = append(u.adj[v], c)
			u.adj[c] = append(u.adj[c], v)
		}
	}
	for v := range u.adj {
		slices.Sort(u.adj[v])
	}
	if format != nil {
		u.labels = make([]string, n)
		for v, l := range r.labels {
			u.labels[v] = format(l)
		}
	}
	return u
}

// String renders the tree in a compact parenthesized form, e.g. "1(2(3 4) 5)".
func (r *Rooted[L]) String() string {
	if r == nil || len(r.labels) == 0 {
		return "()"
	}
	type frame struct {
		v    int
		next int
	}
	var b []byte
	stack := []frame{{v: r.root}}
	b = append(b, labelString(r.labels[r.root])...)
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		ch := r.children[f.v]
		if f.next == len(ch) {
			if len(ch) > 0 {
				b = append(b, ')')
			}
			stack = stack[:len(stack)-1]
			continue
		}
		if f.next == 0 {
			b = append(b, '(')
		} else {
			b = append(b, ' ')
		}
		c := ch[f.next]
		f.next++
		b = append(b, labelString(r.labels[c])...)
		stack = append(stack, frame{v: c})
	}
	return string(b)
}

func labelString(l any) string { return fmt.Sprint(l) }
