// Package assignment solves the maximum-weight bipartite matching problem
// between JD requirements and CV evidence within one category.
package assignment

import (
	"math"
	"sort"
)

// Pair is one chosen (row, column) index pair in the optimal assignment.
type Pair struct {
	Row int
	Col int
}

// Solve returns index pairs maximizing the total benefit over the pairs, with
// each row and each column used at most once. For an m×n benefit matrix it
// returns exactly min(m,n) pairs; an empty matrix yields no pairs.
//
// The rectangular matrix is square-padded with zero-benefit cells and solved
// as a min-cost assignment over cost = 1 − benefit. Padded cells cost the
// same regardless of pairing, so the optimal padded solution restricted to
// real rows and columns is optimal for the original matrix. A well-formed
// numeric matrix always yields a solution; runtime is cubic in max(m,n).
// Deterministic up to tie-breaking between equal-benefit pairings.
func Solve(benefit [][]float64) []Pair {
	m := len(benefit)
	if m == 0 {
		return nil
	}
	n := len(benefit[0])
	if n == 0 {
		return nil
	}

	size := m
	if n > size {
		size = n
	}

	cost := make([][]float64, size)
	for i := range cost {
		row := make([]float64, size)
		for j := range row {
			if i < m && j < n {
				row[j] = 1 - benefit[i][j]
			} else {
				row[j] = 1
			}
		}
		cost[i] = row
	}

	rowOf := minCostAssignment(cost)

	pairs := make([]Pair, 0, min(m, n))
	for j, i := range rowOf {
		if i < m && j < n {
			pairs = append(pairs, Pair{Row: i, Col: j})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].Row < pairs[b].Row })
	return pairs
}

// minCostAssignment runs the Hungarian algorithm with row/column potentials
// and shortest augmenting paths on a square cost matrix. Returns rowOf, where
// rowOf[col] is the row matched to col. Indices are shifted by one internally
// so index 0 can serve as the virtual unmatched column.
func minCostAssignment(cost [][]float64) []int {
	n := len(cost)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	match := make([]int, n+1) // match[col] = row, 0 = unmatched
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		// Grow the alternating tree until an unmatched column is reached.
		for {
			used[j0] = true
			i0 := match[j0]
			j1 := 0
			delta := math.Inf(1)
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Augment along the path back to the virtual column.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	rowOf := make([]int, n)
	for j := 1; j <= n; j++ {
		rowOf[j-1] = match[j] - 1
	}
	return rowOf
}
