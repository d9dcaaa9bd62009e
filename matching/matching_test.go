package matching_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/matching"
)

// TestHopcroftKarp_Table covers small hand-checked graphs.
func TestHopcroftKarp_Table(t *testing.T) {
	cases := []struct {
		name   string
		adj    [][]int
		nRight int
		want   int
	}{
		{"empty", nil, 0, 0},
		{"no edges", [][]int{{}, {}}, 3, 0},
		{"single edge", [][]int{{0}}, 1, 1},
		{"needs augmentation", [][]int{{0, 1}, {0}}, 2, 2},
		{"hall violation", [][]int{{0}, {0}, {0, 1}}, 2, 2},
		{"complete 3x3", [][]int{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}}, 3, 3},
		{"more right than left", [][]int{{4}, {2, 4}}, 5, 2},
		{"chain", [][]int{{0, 1}, {1, 2}, {2, 3}, {3}}, 4, 4},
		{"duplicates", [][]int{{0, 0, 0}, {0}}, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, matching.Validate(tc.adj, tc.nRight))
			res := matching.HopcroftKarp(tc.adj, tc.nRight)
			assert.Equal(t, tc.want, res.Size)
			assertConsistent(t, tc.adj, res)
		})
	}
}

// TestHopcroftKarp_Pairs checks the exact pairing when it is forced.
func TestHopcroftKarp_Pairs(t *testing.T) {
	res := matching.HopcroftKarp([][]int{{0, 1}, {0}}, 2)
	assert.True(t, res.Saturates())
	assert.Equal(t, []int{1, 0}, res.PairLeft)
	assert.Equal(t, []int{1, 0}, res.PairRight)
	assert.Equal(t, [][2]int{{0, 1}, {1, 0}}, res.Pairs())
}

// TestHopcroftKarp_SkipsOutOfRange ignores invalid entries instead of panicking.
func TestHopcroftKarp_SkipsOutOfRange(t *testing.T) {
	adj := [][]int{{-1, 7, 0}}
	assert.ErrorIs(t, matching.Validate(adj, 1), matching.ErrBadVertex)
	assert.ErrorIs(t, matching.Validate(nil, -1), matching.ErrBadVertex)

	res := matching.HopcroftKarp(adj, 1)
	assert.Equal(t, 1, res.Size)
	assert.Equal(t, []int{0}, res.PairLeft)
}

// TestHopcroftKarp_MatchesKuhn compares against a simple augmenting-path
// reference on seeded random graphs.
func TestHopcroftKarp_MatchesKuhn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		nl, nr := 1+rng.Intn(9), 1+rng.Intn(9)
		adj := make([][]int, nl)
		for u := range adj {
			for v := 0; v < nr; v++ {
				if rng.Float64() < 0.3 {
					adj[u] = append(adj[u], v)
				}
			}
		}
		res := matching.HopcroftKarp(adj, nr)
		require.Equal(t, kuhn(adj, nr), res.Size, "graph %v", adj)
		assertConsistent(t, adj, res)
	}
}

// TestHopcroftKarp_FreshState verifies that consecutive calls are independent.
func TestHopcroftKarp_FreshState(t *testing.T) {
	adj := [][]int{{0}, {0, 1}}
	a := matching.HopcroftKarp(adj, 2)
	a.PairLeft[0] = 99
	b := matching.HopcroftKarp(adj, 2)
	assert.Equal(t, 2, b.Size)
	assert.Equal(t, []int{0, 1}, b.PairLeft)
}

// assertConsistent checks that PairLeft and PairRight mirror each other and
// use only existing edges.
func assertConsistent(t *testing.T, adj [][]int, res matching.Result) {
	t.Helper()
	matched := 0
	for u, v := range res.PairLeft {
		if v == matching.Unmatched {
			continue
		}
		matched++
		assert.Equal(t, u, res.PairRight[v])
		assert.Contains(t, adj[u], v)
	}
	assert.Equal(t, res.Size, matched)
}

// kuhn is the textbook O(V·E) augmenting-path matcher.
func kuhn(adj [][]int, nRight int) int {
	pairR := make([]int, nRight)
	for i := range pairR {
		pairR[i] = -1
	}
	var try func(u int, seen []bool) bool
	try = func(u int, seen []bool) bool {
		for _, v := range adj[u] {
			if seen[v] {
				continue
			}
			seen[v] = true
			if pairR[v] == -1 || try(pairR[v], seen) {
				pairR[v] = u
				return true
			}
		}
		return false
	}
	size := 0
	for u := range adj {
		if try(u, make([]bool, nRight)) {
			size++
		}
	}
	return size
}
