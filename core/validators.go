package core

import "math"

// DefaultEpsilon is the tolerance used by structural numeric checks
// (orthonormality, resolution of identity) unless a caller overrides it.
const DefaultEpsilon = 1e-9

// Validate checks that the grid has at least two finite, strictly
// increasing positions.
//
// Errors: ErrGridTooShort, ErrNaNInf, ErrGridNotIncreasing.
// Complexity: O(N) time, O(1) space.
func (g ParameterGrid) Validate() error {
	if len(g) < 2 {
		return ErrGridTooShort
	}
	for i, mu := range g {
		if math.IsNaN(mu) || math.IsInf(mu, 0) {
			return ErrNaNInf
		}
		if i > 0 && mu <= g[i-1] {
			return ErrGridNotIncreasing
		}
	}

	return nil
}

// Validate checks the shape of the set: at least one eigenpair, one vector
// per value, every vector of length Dim. Numeric content (orthonormality)
// is deliberately NOT validated here — that is an O(D³) check reserved for
// ValidateOrthonormal, which callers invoke from tests.
//
// Errors: ErrMalformedSet, ErrNaNInf.
// Complexity: O(D²) time, O(1) space.
func (s EigenPairSet) Validate() error {
	d := s.Dim()
	if d == 0 || len(s.Vectors) != d {
		return ErrMalformedSet
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if len(s.Vectors[i]) != d {
			return ErrMalformedSet
		}
	}

	return nil
}

// ValidateOrthonormal verifies ⟨vᵢ, vⱼ⟩ = δᵢⱼ within eps for every pair of
// eigenvectors in the set. A non-positive eps falls back to DefaultEpsilon.
//
// This is the expensive guarantee the overlap builder assumes of its caller;
// production paths skip it and tests assert it.
//
// Errors: ErrMalformedSet (via Validate), ErrNotOrthonormal.
// Complexity: O(D³) time, O(1) space.
func (s EigenPairSet) ValidateOrthonormal(eps float64) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	var (
		d    = s.Dim()
		dot  float64
		want float64
	)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			dot = 0
			for x := 0; x < d; x++ {
				dot += s.Vectors[i][x] * s.Vectors[j][x]
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(dot-want) > eps {
				return ErrNotOrthonormal
			}
		}
	}

	return nil
}

// Validate checks that the overlap matrix is square with entries in [0,1]
// (within DefaultEpsilon) and finite.
//
// Errors: ErrDataMismatch, ErrNaNInf.
// Complexity: O(D²) time, O(1) space.
func (m OverlapMatrix) Validate() error {
	d := m.Dim()
	if d == 0 {
		return ErrDataMismatch
	}
	for i := range m {
		if len(m[i]) != d {
			return ErrDataMismatch
		}
		for _, v := range m[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
			if v < -DefaultEpsilon || v > 1+DefaultEpsilon {
				return ErrDataMismatch
			}
		}
	}

	return nil
}
