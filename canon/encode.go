// SPDX-License-Identifier: MIT
// Package: lvtree/canon
//
// encode.go — AHU encoding and canonical forms.

package canon

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtree/tree"
)

// rootedOrder returns the preorder of u rooted at root together with each
// node's parent (-1 for root). Reversing the order yields a postorder-safe
// sequence: every node comes after all of its descendants.
func rootedOrder[K cmp.Ordered](u *tree.Unrooted[K], root int) (order, parent []int) {
	n := u.Len()
	order = make([]int, 0, n)
	parent = make([]int, n)
	parent[root] = -1
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		for _, w := range u.Neighbors(v) {
			if w != parent[v] {
				parent[w] = v
				stack = append(stack, w)
			}
		}
	}
	return order, parent
}

// Encode returns the AHU encoding of u rooted at node index root. Labels are
// included when u is labeled. A nil or empty tree, or a root outside
// [0, u.Len()), encodes as "".
func Encode[K cmp.Ordered](u *tree.Unrooted[K], root int) string {
	if !validRoot(u, root) {
		return ""
	}
	return encode(u, root, u.Labeled())
}

// validRoot reports whether u is a valid tree with a node at index root.
func validRoot[K cmp.Ordered](u *tree.Unrooted[K], root int) bool {
	return u.Validate() == nil && root >= 0 && root < u.Len()
}

// encode builds the encoding bottom-up over the reversed preorder.
func encode[K cmp.Ordered](u *tree.Unrooted[K], root int, labeled bool) string {
	order, parent := rootedOrder(u, root)
	enc := make([]string, u.Len())
	var kids []string
	var b strings.Builder
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		kids = kids[:0]
		for _, w := range u.Neighbors(v) {
			if w != parent[v] {
				kids = append(kids, enc[w])
			}
		}
		sortEncodings(kids)

		b.Reset()
		b.WriteByte('(')
		if labeled {
			b.WriteString(strconv.Quote(u.Label(v)))
		}
		for _, k := range kids {
			b.WriteString(k)
		}
		b.WriteByte(')')
		enc[v] = b.String()

		// children are never read again
		for _, w := range u.Neighbors(v) {
			if w != parent[v] {
				enc[w] = ""
			}
		}
	}
	return enc[root]
}

// sortEncodings sorts child encodings lexicographically in place. When fewer
// than half of them are distinct it groups equal strings and sorts only the
// distinct keys; equal strings are indistinguishable, so the result is the
// same slice contents a plain sort would give.
func sortEncodings(enc []string) {
	if len(enc) < 2 {
		return
	}
	count := make(map[string]int, len(enc))
	for _, e := range enc {
		count[e]++
	}
	if 2*len(count) >= len(enc) {
		slices.Sort(enc)
		return
	}
	keys := make([]string, 0, len(count))
	for k := range count {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	i := 0
	for _, k := range keys {
		for c := count[k]; c > 0; c-- {
			enc[i] = k
			i++
		}
	}
}

// CanonicalForm returns the lexicographically smallest encoding of u rooted
// at one of its centers. Isomorphic trees, and only those, share a form.
// Labels take part when u is labeled.
func CanonicalForm[K cmp.Ordered](u *tree.Unrooted[K]) string {
	if u.Validate() != nil {
		return ""
	}
	return canonicalForm(u, u.Labeled())
}

// StructuralForm is CanonicalForm with labels ignored.
func StructuralForm[K cmp.Ordered](u *tree.Unrooted[K]) string {
	if u.Validate() != nil {
		return ""
	}
	return canonicalForm(u, false)
}

func canonicalForm[K cmp.Ordered](u *tree.Unrooted[K], labeled bool) string {
	best := ""
	for i, c := range Centers(u) {
		if e := encode(u, c, labeled); i == 0 || e < best {
			best = e
		}
	}
	return best
}

// AreIsomorphic reports whether a and b are isomorphic unrooted trees.
// Labels must match too when both trees are labeled; otherwise only the
// shape is compared.
//
// Errors: a nil or empty tree yields a *tree.InvalidTreeError.
func AreIsomorphic[K1, K2 cmp.Ordered](a *tree.Unrooted[K1], b *tree.Unrooted[K2]) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, err
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	if len(Centers(a)) != len(Centers(b)) {
		return false, nil
	}
	labeled := a.Labeled() && b.Labeled()
	return canonicalForm(a, labeled) == canonicalForm(b, labeled), nil
}
