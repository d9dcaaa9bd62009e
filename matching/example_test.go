package matching_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/matching"
)

// ExampleHopcroftKarp assigns three workers to three jobs.
//
//	worker 0 → jobs {0, 1}
//	worker 1 → jobs {0}
//	worker 2 → jobs {1, 2}
func ExampleHopcroftKarp() {
	adj := [][]int{{0, 1}, {0}, {1, 2}}
	res := matching.HopcroftKarp(adj, 3)
	fmt.Println(res.Size, res.Saturates())
	fmt.Println(res.Pairs())
	// Output:
	// 3 true
	// [[0 1] [1 0] [2 2]]
}
