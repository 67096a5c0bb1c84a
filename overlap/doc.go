// Package overlap builds overlap matrices between adjacent orthonormal
// eigenbases of a parameter sweep.
//
// The overlap matrix is the continuity currency of spectra: entry (i,j) is
// the inner-product magnitude |⟨vᵢ(μₖ), vⱼ(μₖ₊₁)⟩| between eigenvector i of
// the earlier grid point and eigenvector j of the later one.  A value near 1
// says "state i simply continued as state j"; a spread row says the state
// mixed into several successors.
//
// Contracts:
//   - Both sets must share the same dimension D.
//   - Callers guarantee orthonormality of each basis; Build does not re-check
//     it (an O(D³) cost) — tests assert it via core.ValidateOrthonormal.
//   - Pure function: no side effects, inputs never mutated.
//
// Performance:
//
//   - Time:   O(D³) — D² pairwise dot products of length-D vectors.
//   - Memory: O(D²) for the result.
//
// Acceptable at the domain's dimension ceiling (D ≤ ~128).
package overlap
