package sweep

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectra/core"
)

// SymSampler adapts a caller-supplied symmetric-operator builder into a
// Sampler: at each μ it diagonalizes build(μ) and returns the full spectrum
// with eigenvalues ascending and orthonormal eigenvectors.
//
// Contracts:
//   - build must be a pure, deterministic function of μ returning a matrix
//     of fixed dimension across all calls.
//
// Errors: core.ErrNumericalFailure (wrapped with μ) when the factorization
// does not converge.
//
// Complexity: O(D³) per sample (dense symmetric eigendecomposition).
func SymSampler(build func(mu float64) *mat.SymDense) Sampler {
	return SamplerFunc(func(mu float64) (core.EigenPairSet, error) {
		var eig mat.EigenSym
		if ok := eig.Factorize(build(mu), true); !ok {
			return core.EigenPairSet{}, fmt.Errorf("sweep: μ=%g: %w", mu, core.ErrNumericalFailure)
		}

		values := eig.Values(nil)
		var vectors mat.Dense
		eig.VectorsTo(&vectors)

		d := len(values)
		set := core.EigenPairSet{
			Mu:      mu,
			Values:  values,
			Vectors: make([][]float64, d),
		}
		for i := 0; i < d; i++ {
			col := make([]float64, d)
			mat.Col(col, i, &vectors)
			set.Vectors[i] = col
		}

		return set, nil
	})
}

// Memoize wraps a Sampler in a bounded, thread-safe LRU cache keyed by μ.
//
// Expensive coefficient pipelines feeding a sampler must be memoized
// explicitly with a bounded eviction policy — never through ambient global
// state reachable from inside the core. Memoize is that explicit wrapper:
// capacity-bounded, least-recently-used eviction, safe under the parallel
// sampling stage.
//
// Failed samples are not cached: a deterministic failure will simply fail
// again, and callers in lenient mode already skip it.
//
// Errors: ErrNilSampler, ErrBadCacheSize.
func Memoize(s Sampler, size int) (Sampler, error) {
	if s == nil {
		return nil, ErrNilSampler
	}
	if size < 1 {
		return nil, ErrBadCacheSize
	}

	cache, err := lru.New[float64, core.EigenPairSet](size)
	if err != nil {
		return nil, err
	}

	return SamplerFunc(func(mu float64) (core.EigenPairSet, error) {
		if set, ok := cache.Get(mu); ok {
			return set, nil
		}

		set, err := s.Sample(mu)
		if err != nil {
			return core.EigenPairSet{}, err
		}
		cache.Add(mu, set)

		return set, nil
	}), nil
}
