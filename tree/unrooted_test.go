package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtree/tree"
)

// UnrootedSuite exercises construction and validation of undirected trees.
type UnrootedSuite struct {
	suite.Suite
}

// TestPath verifies sorted identity keys and neighbor lists.
func (s *UnrootedSuite) TestPath() {
	u, err := tree.NewUnrooted(map[string][]string{
		"c": {"b"},
		"a": {"b"},
		"b": {"c", "a"},
	})
	require.NoError(s.T(), err)

	s.Equal(3, u.Len())
	s.Equal("a", u.ID(0))
	i, ok := u.Index("c")
	s.True(ok)
	s.Equal(2, i)
	_, ok = u.Index("z")
	s.False(ok)
	s.Equal([]int{0, 2}, u.Neighbors(1))
	s.Equal(2, u.Degree(1))
	s.Equal([][2]int{{0, 1}, {1, 2}}, u.Edges())
	s.False(u.Labeled())
	s.Equal("", u.Label(0))
}

// TestSingleNode uses the explicit node list, the only way to declare an
// isolated identifier through an edge list.
func (s *UnrootedSuite) TestSingleNode() {
	u, err := tree.UnrootedFromEdges([]int{42}, nil)
	require.NoError(s.T(), err)
	s.Equal(1, u.Len())
	s.Equal(42, u.ID(0))
	s.Empty(u.Neighbors(0))
}

// TestLabels attaches labels and defaults missing ones to "".
func (s *UnrootedSuite) TestLabels() {
	u, err := tree.NewLabeledUnrooted(
		map[int][]int{1: {2}, 2: {1}},
		map[int]string{1: "x"},
	)
	require.NoError(s.T(), err)
	s.True(u.Labeled())
	s.Equal("x", u.Label(0))
	s.Equal("", u.Label(1))

	_, err = tree.NewLabeledUnrooted(map[int][]int{1: nil}, map[int]string{9: "y"})
	s.ErrorIs(err, tree.ErrInvalidInput)
}

// TestRoot orients a path at its middle node.
func (s *UnrootedSuite) TestRoot() {
	u, err := tree.UnrootedFromEdges(nil, [][2]string{{"a", "b"}, {"b", "c"}})
	require.NoError(s.T(), err)

	r, err := u.Root(1)
	require.NoError(s.T(), err)
	s.Equal(1, r.Root())
	s.Equal([]int{0, 2}, r.Children(1))
	s.Equal("b(a c)", r.String())

	_, err = u.Root(3)
	s.ErrorIs(err, tree.ErrInvalidInput)
}

// TestInvalid walks every rejection path.
func (s *UnrootedSuite) TestInvalid() {
	cases := []struct {
		name     string
		adj      map[string][]string
		sentinel error
		reason   tree.Reason
	}{
		{"empty", map[string][]string{}, tree.ErrInvalidTree, tree.ReasonEmpty},
		{"unknown neighbor", map[string][]string{"a": {"z"}}, tree.ErrInvalidInput, tree.ReasonUnknownNode},
		{"self-loop", map[string][]string{"a": {"a"}}, tree.ErrInvalidTree, tree.ReasonSelfLoop},
		{"duplicate edge", map[string][]string{"a": {"b", "b"}, "b": {"a", "a"}}, tree.ErrInvalidTree, tree.ReasonDuplicateEdge},
		{"asymmetric", map[string][]string{"a": {"b"}, "b": nil}, tree.ErrInvalidInput, tree.ReasonAsymmetric},
		{"triangle", map[string][]string{"a": {"b", "c"}, "b": {"a", "c"}, "c": {"a", "b"}}, tree.ErrInvalidTree, tree.ReasonCycle},
		{"disconnected", map[string][]string{"a": {"b"}, "b": {"a"}, "c": nil}, tree.ErrInvalidTree, tree.ReasonDisconnected},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := tree.NewUnrooted(tc.adj)
			s.Require().Error(err)
			s.ErrorIs(err, tc.sentinel)

			var te *tree.InvalidTreeError
			var ie *tree.InvalidInputError
			switch {
			case errors.As(err, &te):
				s.Equal(tc.reason, te.Reason)
			case errors.As(err, &ie):
				s.Equal(tc.reason, ie.Reason)
			default:
				s.Failf("unexpected error type", "%T", err)
			}
		})
	}
}

// TestNilValidate ensures a nil tree is reported as empty.
func (s *UnrootedSuite) TestNilValidate() {
	var u *tree.Unrooted[int]
	s.ErrorIs(u.Validate(), tree.ErrInvalidTree)
}

func TestUnrootedSuite(t *testing.T) {
	suite.Run(t, new(UnrootedSuite))
}

// TestErrorMessages pins the rendered error text.
func TestErrorMessages(t *testing.T) {
	_, err := tree.NewUnrooted(map[int][]int{1: {1}})
	assert.EqualError(t, err, "tree: invalid tree: self-loop at node 1")

	_, err = tree.FromParentMatrix([][]bool{{false, true}, {false}})
	assert.EqualError(t, err, "tree: invalid input: matrix is not square (row 1 has 1 columns, want 2)")

	_, err = tree.NewRooted[int](nil)
	assert.EqualError(t, err, "tree: invalid tree: tree has no nodes")
}
