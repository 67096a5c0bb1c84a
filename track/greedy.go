// SPDX-License-Identifier: MIT

package track

import (
	"sort"

	"github.com/katalvlaran/spectra/core"
)

// entry is one overlap cell flattened for presorting.
type entry struct {
	row, col int
	weight   float64
}

// greedyAssign pairs rows to columns by repeatedly taking the largest
// remaining overlap entry and retiring its row and column.
//
// Determinism: entries are sorted by descending weight, then ascending row,
// then ascending column — so at exact degeneracies the lowest old index
// wins, then the lowest new index.
//
// Contracts:
//   - m is square with dimension ≥ 1 (validated by the caller).
//
// Complexity: O(D² log D) time (sort dominates), O(D²) space.
func greedyAssign(m core.OverlapMatrix) CorrespondenceMap {
	d := m.Dim()
	entries := make([]entry, 0, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			entries = append(entries, entry{row: i, col: j, weight: m[i][j]})
		}
	}
	sort.Slice(entries, func(a, b int) bool {
		ea, eb := entries[a], entries[b]
		if ea.weight != eb.weight {
			return ea.weight > eb.weight
		}
		if ea.row != eb.row {
			return ea.row < eb.row
		}

		return ea.col < eb.col
	})

	var (
		out     = make(CorrespondenceMap, d)
		rowDone = make([]bool, d)
		colDone = make([]bool, d)
		left    = d
	)
	for i := range out {
		out[i] = -1
	}
	for _, e := range entries {
		if rowDone[e.row] || colDone[e.col] {
			continue
		}
		out[e.row] = e.col
		rowDone[e.row] = true
		colDone[e.col] = true
		if left--; left == 0 {
			break
		}
	}

	return out
}
