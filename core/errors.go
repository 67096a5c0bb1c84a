package core

import "errors"

// Sentinel errors shared across the spectra subpackages. Algorithms MUST
// return these sentinels (optionally wrapped with fmt.Errorf("ctx: %w", …)
// at outer boundaries) and tests MUST check them via errors.Is.
var (
	// ErrDimensionMismatch indicates that two eigenpair sets which must live
	// in the same space disagree on dimension. Always fatal for a sweep.
	ErrDimensionMismatch = errors.New("core: eigenpair set dimension mismatch")

	// ErrNumericalFailure marks eigensolver non-convergence at a grid point.
	// The sweep driver decides whether it aborts (strict) or bridges (lenient).
	ErrNumericalFailure = errors.New("core: eigensolver failed to converge")

	// ErrDataMismatch flags a violated internal invariant: a non-square
	// overlap matrix, a non-bijective correspondence, and the like. It marks
	// a logic defect and is never recovered from.
	ErrDataMismatch = errors.New("core: internal data invariant violated")

	// ErrGridTooShort indicates a parameter grid with fewer than two points.
	ErrGridTooShort = errors.New("core: parameter grid needs at least two points")

	// ErrGridNotIncreasing indicates grid positions that are not strictly
	// increasing.
	ErrGridNotIncreasing = errors.New("core: parameter grid must be strictly increasing")

	// ErrMalformedSet indicates an EigenPairSet whose values/vectors shapes
	// are inconsistent (wrong vector count or vector length).
	ErrMalformedSet = errors.New("core: malformed eigenpair set")

	// ErrNotOrthonormal indicates an eigenbasis that fails the orthonormality
	// check within the requested tolerance.
	ErrNotOrthonormal = errors.New("core: eigenbasis is not orthonormal within eps")

	// ErrNaNInf indicates a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("core: NaN or Inf encountered")
)
