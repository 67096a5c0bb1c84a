// SPDX-License-Identifier: MIT

// Package track assigns persistent identity labels to eigenstates across a
// parameter sweep.
//
// Raw eigensolvers order states by eigenvalue, so whenever two levels swap
// order between adjacent grid points the "same" state changes index. track
// undoes that: given the overlap matrix between two adjacent eigenbases it
// computes a CorrespondenceMap — a bijection old-index → new-index that
// maximizes preserved identity — and the Tracker composes those maps into a
// running total permutation, so every state keeps the label it had at the
// first grid point of the sweep.
//
// Two interchangeable matching policies are selected at configuration time
// (never by runtime type inspection):
//
//   - Greedy — repeatedly take the largest remaining overlap entry and
//     assign its row/column pair. O(D² log D) with presorting. Fast, and
//     exact whenever one overlap per row dominates (the common case away
//     from degeneracies).
//
//   - OptimalAssignment — maximum-weight bipartite matching via the
//     Hungarian algorithm with potentials. O(D³). Globally optimal even for
//     adversarial overlap patterns near degeneracies.
//
// Both policies output a true bijection or fail with core.ErrDataMismatch;
// a non-bijective result is a logic defect and is never silently corrected.
//
// Determinism: ties between equal competing overlaps (e.g., exactly at a
// true degeneracy) resolve deterministically — greedy takes the lowest old
// index first, then the lowest new index; the Hungarian policy prefers free
// columns at equal cost, so a fully degenerate matrix yields the identity
// map under both. Re-running either policy on the same matrix yields the
// same map.
//
// The Tracker additionally exposes, per step, the diagonal overlap (natural
// alignment before reordering) and the off-diagonal mixing magnitude between
// any two identities — the signals the crossing detector feeds on.
//
// The running-permutation composition is an inherently sequential scan:
// step k's cumulative mapping depends on all prior steps, so Advance must be
// called in increasing parameter order from a single goroutine.
package track
