// SPDX-License-Identifier: MIT

package track

import (
	"math"

	"github.com/katalvlaran/spectra/core"
)

// hungarianAssign solves the assignment problem exactly: it returns the
// bijection row → column maximizing the total matched overlap.
//
// Implementation: shortest-augmenting-path Hungarian algorithm with dual
// potentials, run on the cost matrix c[i][j] = 1 − m[i][j] (overlap entries
// live in [0,1], so costs are non-negative and minimizing total cost
// maximizes total overlap). Determinism: rows are inserted in ascending
// order, column scans use strict improvement, and equal-delta ties prefer a
// free column over rerouting an earlier assignment — so a fully degenerate
// (all-equal) matrix resolves to the identity map, matching the greedy
// policy's lowest-index-wins convention.
//
// Contracts:
//   - m is square with dimension ≥ 1 (validated by the caller).
//
// Complexity: O(D³) time, O(D) space beyond the input.
func hungarianAssign(m core.OverlapMatrix) CorrespondenceMap {
	d := m.Dim()

	// Dual potentials and matching state use 1-based indexing; index 0 is
	// the virtual unmatched column the augmenting search starts from.
	var (
		u    = make([]float64, d+1) // row potentials
		v    = make([]float64, d+1) // column potentials
		p    = make([]int, d+1)     // p[j] = row matched to column j (0 = free)
		way  = make([]int, d+1)     // way[j] = previous column on the path to j
		minv = make([]float64, d+1) // minimal reduced cost seen per column
		used = make([]bool, d+1)    // columns visited by the current search
	)

	var (
		i, j, j0, j1, i0 int
		cur, delta       float64
	)
	for i = 1; i <= d; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= d; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = math.Inf(1)
			j1 = 0
			for j = 1; j <= d; j++ {
				if used[j] {
					continue
				}
				cur = (1 - m[i0-1][j-1]) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				} else if minv[j] == delta && j1 != 0 && p[j] == 0 && p[j1] != 0 {
					// Equal shortest distance: ending at a free column keeps
					// earlier assignments untouched (stable tie resolution).
					j1 = j
				}
			}
			for j = 0; j <= d; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment: flip the matching along the found path.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	out := make(CorrespondenceMap, d)
	for j = 1; j <= d; j++ {
		out[p[j]-1] = j - 1
	}

	return out
}
