// SPDX-License-Identifier: MIT

package track

import (
	"fmt"

	"github.com/katalvlaran/spectra/core"
)

// Assign validates the overlap matrix and routes it to the configured
// matching policy, returning a verified bijection old-index → new-index.
//
// Contracts:
//   - m must be square, finite, with entries in [0,1].
//
// Errors: core.ErrDataMismatch, core.ErrNaNInf, ErrUnsupportedPolicy.
//
// Complexity: validation O(D²); Greedy O(D² log D); OptimalAssignment O(D³).
func Assign(m core.OverlapMatrix, policy Policy) (CorrespondenceMap, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var out CorrespondenceMap
	switch policy {
	case Greedy:
		out = greedyAssign(m)
	case OptimalAssignment:
		out = hungarianAssign(m)
	default:
		return nil, ErrUnsupportedPolicy
	}

	// Both policies construct permutations; a failure here is a defect.
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// step retains everything the crossing detector later needs from one
// transition: the raw overlap matrix, the correspondence chosen on it, and
// where each identity label sat before the transition.
type step struct {
	overlaps core.OverlapMatrix
	corr     CorrespondenceMap
	rowOf    []int // rowOf[label] = raw index of the label at the step's start
}

// Tracker composes per-step correspondences into a running total
// permutation, assigning every eigenstate the persistent identity label it
// had at the first grid point.
//
// A Tracker is NOT safe for concurrent use: the cumulative mapping of step k
// depends on all prior steps, so Advance forms a strictly sequential scan
// owned by a single goroutine. All completed steps remain valid if the
// caller abandons the sweep early.
type Tracker struct {
	dim    int
	policy Policy
	cum    []int // cum[label] = raw index at the latest processed point
	steps  []step
}

// NewTracker creates a tracker for D-dimensional spectra under the given
// matching policy. The initial cumulative mapping is the identity: label i
// is raw index i at the first grid point.
//
// Errors: ErrBadDimension, ErrUnsupportedPolicy.
func NewTracker(dim int, policy Policy) (*Tracker, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	if policy != Greedy && policy != OptimalAssignment {
		return nil, ErrUnsupportedPolicy
	}

	cum := make([]int, dim)
	for i := range cum {
		cum[i] = i
	}

	return &Tracker{dim: dim, policy: policy, cum: cum}, nil
}

// Advance consumes the overlap matrix of the next transition (grid point k
// to k+1), computes its correspondence under the configured policy, and
// folds it into the running total permutation.
//
// Returns the per-step correspondence (raw old index → raw new index), not
// the cumulative one; use IndexOf for label positions.
//
// Errors: core.ErrDataMismatch (wrapped with the step index),
// core.ErrNaNInf, ErrUnsupportedPolicy.
//
// Complexity: per policy (see Assign) plus O(D) composition.
func (t *Tracker) Advance(m core.OverlapMatrix) (CorrespondenceMap, error) {
	if m.Dim() != t.dim {
		return nil, fmt.Errorf("track: step %d: %w", len(t.steps), core.ErrDataMismatch)
	}

	corr, err := Assign(m, t.policy)
	if err != nil {
		return nil, fmt.Errorf("track: step %d: %w", len(t.steps), err)
	}

	rowOf := make([]int, t.dim)
	copy(rowOf, t.cum)
	t.steps = append(t.steps, step{overlaps: m, corr: corr, rowOf: rowOf})

	// cum[label] = corr[old raw index of label].
	t.cum = Compose(t.cum, corr)

	return corr, nil
}

// Dim returns the tracked spectrum dimension D.
func (t *Tracker) Dim() int { return t.dim }

// Steps returns the number of transitions advanced through so far.
func (t *Tracker) Steps() int { return len(t.steps) }

// IndexOf returns the raw index identity label holds at the latest
// processed grid point.
//
// Errors: ErrLabelOutOfRange.
func (t *Tracker) IndexOf(label int) (int, error) {
	if label < 0 || label >= t.dim {
		return 0, ErrLabelOutOfRange
	}

	return t.cum[label], nil
}

// DiagonalOverlap returns the overlap between naturally-aligned raw indices
// at the given step, before any reordering: out[i] = M[i][i]. Values near 1
// signal smooth continuation; dips signal state exchange.
//
// Errors: ErrStepOutOfRange.
// Complexity: O(D) time, O(D) space.
func (t *Tracker) DiagonalOverlap(stepIdx int) ([]float64, error) {
	if stepIdx < 0 || stepIdx >= len(t.steps) {
		return nil, ErrStepOutOfRange
	}

	m := t.steps[stepIdx].overlaps
	out := make([]float64, t.dim)
	for i := 0; i < t.dim; i++ {
		out[i] = m[i][i]
	}

	return out, nil
}

// StepMap returns the per-step correspondence chosen at the given step
// (raw old index → raw new index), for diagnostics and reporting.
//
// Errors: ErrStepOutOfRange.
func (t *Tracker) StepMap(stepIdx int) (CorrespondenceMap, error) {
	if stepIdx < 0 || stepIdx >= len(t.steps) {
		return nil, ErrStepOutOfRange
	}

	out := make(CorrespondenceMap, t.dim)
	copy(out, t.steps[stepIdx].corr)

	return out, nil
}

// Mixing returns the off-diagonal mixing magnitude between identities a and
// b across the given step: the cross overlap between the raw level a holds
// at grid point k and the raw level b holds there, measured across the step
// (row at k, column at k+1), symmetrized over label order.
//
// A value near 1 means the eigenvector of one level at k reappears as the
// other level at k+1 — genuine character exchange, the signature of a true
// avoided crossing. A value near 0 means the levels merely passed close in
// energy while their eigenvectors stayed put.
//
// Errors: ErrStepOutOfRange, ErrLabelOutOfRange.
// Complexity: O(1).
func (t *Tracker) Mixing(stepIdx, a, b int) (float64, error) {
	if stepIdx < 0 || stepIdx >= len(t.steps) {
		return 0, ErrStepOutOfRange
	}
	if a < 0 || a >= t.dim || b < 0 || b >= t.dim {
		return 0, ErrLabelOutOfRange
	}

	var (
		st = t.steps[stepIdx]
		ra = st.rowOf[a] // raw level of a at point k
		rb = st.rowOf[b] // raw level of b at point k
	)
	ab := st.overlaps[ra][rb]
	ba := st.overlaps[rb][ra]
	if ab >= ba {
		return ab, nil
	}

	return ba, nil
}
