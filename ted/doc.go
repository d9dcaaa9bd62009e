// SPDX-License-Identifier: MIT

// Package ted computes tree edit distance between ordered, labeled, rooted
// trees with the Zhang–Shasha dynamic program.
//
// The distance is the minimum total cost of node deletions, insertions and
// substitutions turning tree A into tree B. Deleting a node splices its
// children into its parent in order; inserting is the reverse. With unit
// costs a substitution is free between equal labels and costs 1 otherwise.
//
// Algorithm:
//
//  1. Number each tree in postorder (1..n) and record, for every position,
//     the postorder index of the leftmost leaf of its subtree, l(i).
//  2. Keyroots: for each distinct l value, the position with the largest
//     postorder index carrying it; ascending.
//  3. For each keyroot pair (i, j), fill the forest-distance table fd over
//     the ranges l(i)..i × l(j)..j (recurrence below). Whenever x and y
//     both start at the range starts, fd[x][y] is also the distance between
//     the subtrees rooted at x and y and is stored as td[x][y].
//  4. The answer is td[n][m].
//
// Recurrence, for x in l(i)..i and y in l(j)..j:
//
//	base := min(fd[x-1][y] + del(x), fd[x][y-1] + ins(y))
//	if l(x) == l(i) && l(y) == l(j) {
//		fd[x][y] = min(base, fd[x-1][y-1] + sub(x, y))
//	} else {
//		fd[x][y] = min(base, fd[l(x)-1][l(y)-1] + td[x][y])
//	}
//
// Complexity: O(n·m·min(depth_A, leaves_A)·min(depth_B, leaves_B)) time,
// O(n·m) memory.
//
// Usage:
//
//	d, err := ted.Distance(a, b)                     // unit costs
//	res, err := ted.Compute(a, b, ted.Costs[string]{ // custom costs
//		Substitute: func(x, y string) int { ... },
//	})
//	res.Subtree(i, j)                                // any pair of subtrees
package ted
