package sweep_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/sweep"
	"github.com/katalvlaran/spectra/track"
)

// randomPencil returns H(μ) = A + μ·B for fixed random symmetric A, B.
func randomPencil(d int, seed int64) func(mu float64) *mat.SymDense {
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewSymDense(d, nil)
	b := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			a.SetSym(i, j, rng.NormFloat64())
			b.SetSym(i, j, rng.NormFloat64())
		}
	}

	return func(mu float64) *mat.SymDense {
		h := mat.NewSymDense(d, nil)
		for i := 0; i < d; i++ {
			for j := i; j < d; j++ {
				h.SetSym(i, j, a.At(i, j)+mu*b.At(i, j))
			}
		}

		return h
	}
}

func BenchmarkRun(b *testing.B) {
	grid := make(core.ParameterGrid, 64)
	for i := range grid {
		grid[i] = float64(i) / float64(len(grid)-1)
	}

	for _, d := range []int{4, 16, 64} {
		s := sweep.SymSampler(randomPencil(d, 42))
		for _, policy := range []track.Policy{track.Greedy, track.OptimalAssignment} {
			b.Run(fmt.Sprintf("D=%d/policy=%v", d, policy), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := sweep.Run(context.Background(), grid, s,
						sweep.WithPolicy(policy)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
