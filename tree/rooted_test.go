package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/tree"
)

// scenarioTree builds 1(2(3(7) 4(6) 8) 5), the target of the containment scenario.
func scenarioTree(t *testing.T) *tree.Rooted[int] {
	t.Helper()
	r, err := tree.NewRooted(tree.N(1,
		tree.N(2, tree.N(3, tree.N(7)), tree.N(4, tree.N(6)), tree.N(8)),
		tree.N(5),
	))
	require.NoError(t, err)
	return r
}

// TestNewRooted_PreorderKeys verifies that identity keys follow preorder and
// children keep their input order.
func TestNewRooted_PreorderKeys(t *testing.T) {
	r := scenarioTree(t)

	assert.Equal(t, 8, r.Len())
	assert.Equal(t, 0, r.Root())
	assert.Equal(t, []int{1, 2, 3, 7, 4, 6, 8, 5}, r.Labels())
	assert.Equal(t, []int{1, 7}, r.Children(0))
	assert.Equal(t, []int{2, 4, 6}, r.Children(1))
	assert.Equal(t, -1, r.Parent(0))
	assert.Equal(t, 1, r.Parent(6))
	assert.Equal(t, 3, r.Degree(1))
	assert.Equal(t, 3, r.Height())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, r.Preorder())
	assert.Equal(t, "1(2(3(7) 4(6) 8) 5)", r.String())
}

// TestNewRooted_SingleNode checks the smallest valid tree.
func TestNewRooted_SingleNode(t *testing.T) {
	r, err := tree.NewRooted(tree.N("x"))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "x", r.Label(0))
	assert.Equal(t, 0, r.Height())
	assert.Equal(t, "x", r.String())
}

// TestNewRooted_Invalid covers every structural rejection of NewRooted.
func TestNewRooted_Invalid(t *testing.T) {
	shared := tree.N(2)
	loopA := tree.N(1)
	loopB := tree.N(2, loopA)
	loopA.Children = []*tree.Node[int]{loopB}

	cases := []struct {
		name   string
		root   *tree.Node[int]
		reason tree.Reason
	}{
		{"nil root", nil, tree.ReasonEmpty},
		{"nil child", tree.N(1, nil), tree.ReasonNilNode},
		{"shared node", tree.N(1, shared, shared), tree.ReasonSharedNode},
		{"cycle", loopA, tree.ReasonCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tree.NewRooted(tc.root)
			require.Error(t, err)
			assert.ErrorIs(t, err, tree.ErrInvalidTree)

			var te *tree.InvalidTreeError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tc.reason, te.Reason)
		})
	}
}

// TestRooted_NilValidate ensures a nil tree reports an empty structure.
func TestRooted_NilValidate(t *testing.T) {
	var r *tree.Rooted[int]
	assert.ErrorIs(t, r.Validate(), tree.ErrInvalidTree)
	assert.Equal(t, "()", r.String())
}

// TestFromParentMatrix_Valid builds 0 → {1, 2}, 1 → {3}.
func TestFromParentMatrix_Valid(t *testing.T) {
	adj := [][]bool{
		{false, true, true, false},
		{false, false, false, true},
		{false, false, false, false},
		{false, false, false, false},
	}
	r, err := tree.FromParentMatrix(adj)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Root())
	assert.Equal(t, []int{1, 2}, r.Children(0))
	assert.Equal(t, []int{3}, r.Children(1))
	assert.Equal(t, 3, r.Label(3))
	assert.Equal(t, "0(1(3) 2)", r.String())
}

// TestFromParentMatrix_RootNotZero ensures the root is found wherever it is.
func TestFromParentMatrix_RootNotZero(t *testing.T) {
	adj := [][]bool{
		{false, false, false},
		{false, false, false},
		{true, true, false},
	}
	r, err := tree.FromParentMatrixLabeled(adj, []string{"a", "b", "r"})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Root())
	assert.Equal(t, "r(a b)", r.String())
}

// TestFromParentMatrix_Invalid walks the validation priority order.
func TestFromParentMatrix_Invalid(t *testing.T) {
	const F, T = false, true
	cases := []struct {
		name     string
		adj      [][]bool
		sentinel error
		reason   tree.Reason
	}{
		{"empty", nil, tree.ErrInvalidTree, tree.ReasonEmpty},
		{"non-square", [][]bool{{F, T}, {F}}, tree.ErrInvalidInput, tree.ReasonNonSquare},
		{"two parents", [][]bool{{F, F, T}, {F, F, T}, {F, F, F}}, tree.ErrInvalidInput, tree.ReasonMultipleParents},
		{"self-loop", [][]bool{{T}}, tree.ErrInvalidTree, tree.ReasonSelfLoop},
		{"two roots", [][]bool{{F, T, F}, {F, F, F}, {F, F, F}}, tree.ErrInvalidTree, tree.ReasonMultipleRoots},
		{"no root", [][]bool{{F, T}, {T, F}}, tree.ErrInvalidTree, tree.ReasonNoRoot},
		{"detached cycle", [][]bool{{F, F, F}, {F, F, T}, {F, T, F}}, tree.ErrInvalidTree, tree.ReasonCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tree.FromParentMatrix(tc.adj)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)

			var te *tree.InvalidTreeError
			var ie *tree.InvalidInputError
			switch {
			case errors.As(err, &te):
				assert.Equal(t, tc.reason, te.Reason)
			case errors.As(err, &ie):
				assert.Equal(t, tc.reason, ie.Reason)
			default:
				t.Fatalf("unexpected error type %T", err)
			}
		})
	}
}

// TestFromParentMatrixLabeled_LabelCount rejects a label slice of the wrong size.
func TestFromParentMatrixLabeled_LabelCount(t *testing.T) {
	_, err := tree.FromParentMatrixLabeled([][]bool{{false}}, []string{"a", "b"})
	assert.ErrorIs(t, err, tree.ErrInvalidInput)
}

// TestFromParents mirrors the matrix constructor on a parent list.
func TestFromParents(t *testing.T) {
	r, err := tree.FromParents([]int{2, 2, -1, 0}, []string{"a", "b", "r", "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Root())
	assert.Equal(t, "r(a(c) b)", r.String())
	assert.Equal(t, 0, r.Parent(3))

	cases := []struct {
		name    string
		parents []int
		reason  tree.Reason
	}{
		{"empty", nil, tree.ReasonEmpty},
		{"out of range", []int{-1, 5}, tree.ReasonUnknownNode},
		{"self-loop", []int{-1, 1}, tree.ReasonSelfLoop},
		{"two roots", []int{-1, -1}, tree.ReasonMultipleRoots},
		{"no root", []int{1, 0}, tree.ReasonNoRoot},
		{"detached cycle", []int{-1, 2, 1}, tree.ReasonCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tree.FromParents(tc.parents, make([]int, len(tc.parents)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), string(tc.reason))
		})
	}

	_, err = tree.FromParents([]int{-1}, []int{1, 2})
	assert.ErrorIs(t, err, tree.ErrInvalidInput)
}

// TestRooted_Unrooted keeps identity keys and drops orientation.
func TestRooted_Unrooted(t *testing.T) {
	r := scenarioTree(t)
	u := r.Unrooted()

	require.NoError(t, u.Validate())
	assert.Equal(t, r.Len(), u.Len())
	assert.False(t, u.Labeled())
	assert.Equal(t, []int{0, 2, 4, 6}, u.Neighbors(1))
	assert.Equal(t, 1, u.Degree(7))
	assert.Len(t, u.Edges(), r.Len()-1)

	lu := r.UnrootedWithLabels(func(l int) string { return string(rune('a' + l)) })
	assert.True(t, lu.Labeled())
	assert.Equal(t, "b", lu.Label(0))
}

// TestRooted_DeepPath builds a path far deeper than a recursive walk would
// comfortably handle.
func TestRooted_DeepPath(t *testing.T) {
	const depth = 200_000
	root := tree.N(0)
	cur := root
	for i := 1; i < depth; i++ {
		next := tree.N(i)
		cur.Children = []*tree.Node[int]{next}
		cur = next
	}
	r, err := tree.NewRooted(root)
	require.NoError(t, err)
	assert.Equal(t, depth, r.Len())
	assert.Equal(t, depth-1, r.Height())
	assert.Len(t, r.Preorder(), depth)
}

// TestMapLabels keeps structure and keys while replacing labels.
func TestMapLabels(t *testing.T) {
	r := scenarioTree(t)
	m := tree.MapLabels(r, func(id, l int) string { return string(rune('a' + l)) })
	assert.Equal(t, r.Len(), m.Len())
	assert.Equal(t, r.Children(1), m.Children(1))
	assert.Equal(t, "b(c(d(h) e(g) i) f)", m.String())
}
