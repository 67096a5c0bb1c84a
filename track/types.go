// SPDX-License-Identifier: MIT

package track

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spectra/core"
)

// Sentinel errors returned by the track package.
var (
	// ErrUnsupportedPolicy indicates a Policy value outside the declared enum.
	ErrUnsupportedPolicy = errors.New("track: unsupported matching policy")

	// ErrBadDimension indicates a requested tracker dimension < 1.
	ErrBadDimension = errors.New("track: dimension must be >= 1")

	// ErrStepOutOfRange indicates a per-step query for a step that was never
	// advanced through.
	ErrStepOutOfRange = errors.New("track: step index out of range")

	// ErrLabelOutOfRange indicates an identity label outside {0..D-1}.
	ErrLabelOutOfRange = errors.New("track: identity label out of range")
)

// Policy selects the matching strategy used to build correspondence maps.
type Policy int

const (
	// Greedy repeatedly assigns the largest remaining overlap entry.
	// O(D² log D); exact when each state has a dominant successor.
	Greedy Policy = iota

	// OptimalAssignment solves maximum-weight bipartite matching exactly
	// (Hungarian algorithm). O(D³); globally optimal correspondence.
	OptimalAssignment
)

// String returns the policy name, or "Policy(n)" for out-of-range values.
func (p Policy) String() string {
	switch p {
	case Greedy:
		return "Greedy"
	case OptimalAssignment:
		return "OptimalAssignment"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// CorrespondenceMap is a permutation of {0..D−1}: entry i names the index in
// the new basis that continues state i of the old basis.
type CorrespondenceMap []int

// Validate checks that the map is a true bijection of {0..D−1}.
//
// Errors: core.ErrDataMismatch.
// Complexity: O(D) time, O(D) space.
func (m CorrespondenceMap) Validate() error {
	seen := make([]bool, len(m))
	for _, j := range m {
		if j < 0 || j >= len(m) || seen[j] {
			return core.ErrDataMismatch
		}
		seen[j] = true
	}

	return nil
}

// Compose returns the permutation "m after first": out[i] = m[first[i]].
// Both inputs must be bijections of the same length; Compose assumes its
// callers validated them (it is a hot-path helper of the sequential scan).
func Compose(first, m CorrespondenceMap) CorrespondenceMap {
	out := make(CorrespondenceMap, len(first))
	for i, mid := range first {
		out[i] = m[mid]
	}

	return out
}
