package overlap

import (
	"math"

	"github.com/katalvlaran/spectra/core"
)

// Build computes the D×D overlap matrix between two eigenpair sets sampled
// at adjacent grid points: out[i][j] = |⟨a.Vectors[i], b.Vectors[j]⟩|.
//
// The magnitude discards the arbitrary global sign each eigenvector carries,
// so Build is insensitive to solver phase conventions.
//
// Contracts:
//   - a and b must be shape-valid and share the same dimension.
//   - Orthonormality of each basis is assumed, not validated (see doc.go).
//
// Errors: core.ErrMalformedSet, core.ErrNaNInf, core.ErrDimensionMismatch.
//
// Complexity: O(D³) time, O(D²) space.
func Build(a, b core.EigenPairSet) (core.OverlapMatrix, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	d := a.Dim()
	if b.Dim() != d {
		return nil, core.ErrDimensionMismatch
	}

	var (
		out = make(core.OverlapMatrix, d)
		dot float64
		i   int
		j   int
		x   int
	)
	for i = 0; i < d; i++ {
		out[i] = make([]float64, d)
		for j = 0; j < d; j++ {
			dot = 0
			for x = 0; x < d; x++ {
				dot += a.Vectors[i][x] * b.Vectors[j][x]
			}
			out[i][j] = math.Abs(dot)
		}
	}

	return out, nil
}
