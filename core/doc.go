// Package core defines the shared data records and sentinel errors used by
// every subpackage of github.com/katalvlaran/spectra.
//
// Records:
//   - ParameterGrid — strictly increasing sweep positions μ₀ < μ₁ < … < μₙ₋₁.
//   - EigenPairSet  — the D eigenpairs reported by a solver at one grid point.
//   - OverlapMatrix — |⟨vᵢ(μₖ), vⱼ(μₖ₊₁)⟩| between adjacent eigenbases.
//   - Trajectory    — one persistent identity followed across the whole grid.
//
// All records are plain exported-field structs or named slices: immutable by
// convention once built, safe to share across goroutines without locks, and
// directly serializable for downstream reporting.
//
// Errors (sentinel):
//
//	– ErrDimensionMismatch if adjacent eigenpair sets disagree on dimension.
//	– ErrNumericalFailure  if an eigensolver failed to converge.
//	– ErrDataMismatch      if an internal invariant was violated (logic defect;
//	                        never silently corrected).
//	– ErrGridTooShort / ErrGridNotIncreasing for malformed parameter grids.
//	– ErrMalformedSet      for shape-inconsistent eigenpair sets.
//	– ErrNotOrthonormal    if an eigenbasis fails the orthonormality check.
//	– ErrNaNInf            if a non-finite value appears where finite values
//	                        are required.
package core
