package sweep_test

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/crossing"
	"github.com/katalvlaran/spectra/sweep"
	"github.com/katalvlaran/spectra/track"
)

// twoLevelSampler diagonalizes H(μ) = (μ−μ₀)·σz + (Δ/2)·σx, the canonical
// two-level avoided crossing: minimal gap Δ at μ = μ₀, eigenvectors rotating
// by 90° across it.
func twoLevelSampler(mu0, delta float64) sweep.Sampler {
	return sweep.SymSampler(func(mu float64) *mat.SymDense {
		x := mu - mu0

		return mat.NewSymDense(2, []float64{
			x, delta / 2,
			delta / 2, -x,
		})
	})
}

func uniformGrid(lo, hi float64, n int) core.ParameterGrid {
	g := make(core.ParameterGrid, n)
	step := (hi - lo) / float64(n-1)
	for i := range g {
		g[i] = lo + float64(i)*step
	}

	return g
}

// flatSet returns a trivially valid spectrum on the standard basis.
func flatSet(mu float64, d int) core.EigenPairSet {
	set := core.EigenPairSet{
		Mu:      mu,
		Values:  make([]float64, d),
		Vectors: make([][]float64, d),
	}
	for i := 0; i < d; i++ {
		set.Values[i] = float64(i)
		v := make([]float64, d)
		v[i] = 1
		set.Vectors[i] = v
	}

	return set
}

const (
	testMu0   = 0.015 // lands exactly on the 401-point grid over [−1,1]
	testDelta = 0.002
)

func TestRun_TwoLevelAvoidedCrossing(t *testing.T) {
	grid := uniformGrid(-1, 1, 401)
	s := twoLevelSampler(testMu0, testDelta)

	res, err := sweep.Run(context.Background(), grid, s)
	require.NoError(t, err)

	require.Len(t, res.Trajectories, 2)
	assert.Empty(t, res.Skipped)
	for _, traj := range res.Trajectories {
		assert.Equal(t, len(grid), traj.Len())
	}

	require.Len(t, res.Crossings, 1)
	c := res.Crossings[0]
	assert.Equal(t, 0, c.LowerLabel)
	assert.Equal(t, 1, c.UpperLabel)
	assert.Equal(t, 203, c.GridIndex)
	assert.InDelta(t, testMu0, c.Mu, 1e-12)
	assert.InDelta(t, testDelta, c.Gap, 1e-8)
	assert.GreaterOrEqual(t, c.Mixing, 0.5)
	assert.LessOrEqual(t, c.Mixing, 1.0)
}

func TestRun_TrajectoriesFollowAdiabaticBranches(t *testing.T) {
	// On a grid this fine the per-step rotation stays below 45°, so the
	// matcher never exchanges states: trajectory 0 is the lower branch
	// everywhere and trajectory 1 the upper.
	grid := uniformGrid(-1, 1, 401)
	s := twoLevelSampler(testMu0, testDelta)

	res, err := sweep.Run(context.Background(), grid, s)
	require.NoError(t, err)
	require.Len(t, res.Trajectories, 2)

	lo, hi := res.Trajectories[0], res.Trajectories[1]
	for e := range grid {
		assert.LessOrEqual(t, lo.Values[e], hi.Values[e], "point %d", e)
		assert.Equal(t, grid[e], lo.Mu[e])
	}
}

func TestRun_EigenvaluePartition(t *testing.T) {
	// At every grid point the tracked trajectories partition the sampled
	// spectrum: same eigenvalues, only relabeled.
	grid := uniformGrid(-1, 1, 101)
	s := twoLevelSampler(testMu0, testDelta)

	res, err := sweep.Run(context.Background(), grid, s)
	require.NoError(t, err)

	for k, mu := range grid {
		set, serr := s.Sample(mu)
		require.NoError(t, serr)

		got := make([]float64, len(res.Trajectories))
		for i := range res.Trajectories {
			got[i] = res.Trajectories[i].Values[k]
		}
		sort.Float64s(got)

		want := append([]float64(nil), set.Values...)
		sort.Float64s(want)
		assert.InDeltaSlice(t, want, got, 0, "point %d", k)
	}
}

func TestRun_OptimalAssignmentPolicy(t *testing.T) {
	grid := uniformGrid(-1, 1, 401)
	s := twoLevelSampler(testMu0, testDelta)

	res, err := sweep.Run(context.Background(), grid, s,
		sweep.WithPolicy(track.OptimalAssignment))
	require.NoError(t, err)

	require.Len(t, res.Crossings, 1)
	assert.InDelta(t, testMu0, res.Crossings[0].Mu, 1e-12)
	assert.InDelta(t, testDelta, res.Crossings[0].Gap, 1e-8)
}

func TestRun_Deterministic(t *testing.T) {
	grid := uniformGrid(-1, 1, 201)
	s := twoLevelSampler(testMu0, testDelta)

	a, err := sweep.Run(context.Background(), grid, s, sweep.WithWorkers(4))
	require.NoError(t, err)
	b, err := sweep.Run(context.Background(), grid, s, sweep.WithWorkers(1))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// failAt wraps a sampler with solver failures at the given μ values.
func failAt(s sweep.Sampler, at ...float64) sweep.Sampler {
	return sweep.SamplerFunc(func(mu float64) (core.EigenPairSet, error) {
		for _, bad := range at {
			if mu == bad {
				return core.EigenPairSet{}, core.ErrNumericalFailure
			}
		}

		return s.Sample(mu)
	})
}

func TestRun_StrictAbortsOnSolverFailure(t *testing.T) {
	grid := uniformGrid(-1, 1, 401)
	s := failAt(twoLevelSampler(testMu0, testDelta), grid[100])

	_, err := sweep.Run(context.Background(), grid, s)
	require.ErrorIs(t, err, core.ErrNumericalFailure)
	assert.Contains(t, err.Error(), "grid index 100")
}

func TestRun_LenientBridgesSkippedPoints(t *testing.T) {
	grid := uniformGrid(-1, 1, 401)
	s := failAt(twoLevelSampler(testMu0, testDelta), grid[100], grid[300])

	res, err := sweep.Run(context.Background(), grid, s,
		sweep.WithFailureMode(sweep.Lenient))
	require.NoError(t, err)

	assert.Equal(t, []int{100, 300}, res.Skipped)
	require.Len(t, res.Trajectories, 2)
	assert.Equal(t, len(grid)-2, res.Trajectories[0].Len())
	assert.NotContains(t, res.Trajectories[0].Mu, grid[100])

	// Far-from-crossing skips must not disturb detection.
	require.Len(t, res.Crossings, 1)
	assert.InDelta(t, testMu0, res.Crossings[0].Mu, 1e-12)
}

func TestRun_LenientTooFewValidPoints(t *testing.T) {
	grid := core.ParameterGrid{0, 1, 2}
	s := failAt(twoLevelSampler(testMu0, testDelta), grid[1], grid[2])

	_, err := sweep.Run(context.Background(), grid, s,
		sweep.WithFailureMode(sweep.Lenient))
	require.ErrorIs(t, err, sweep.ErrTooFewValidPoints)
}

func TestRun_DimensionDriftIsFatal(t *testing.T) {
	grid := core.ParameterGrid{0, 1, 2, 3}
	s := sweep.SamplerFunc(func(mu float64) (core.EigenPairSet, error) {
		if mu == 2 {
			return flatSet(mu, 3), nil
		}

		return flatSet(mu, 2), nil
	})

	_, err := sweep.Run(context.Background(), grid, s)
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "grid index 2")
}

func TestRun_InputValidation(t *testing.T) {
	grid := uniformGrid(-1, 1, 11)
	s := twoLevelSampler(testMu0, testDelta)
	ctx := context.Background()

	_, err := sweep.Run(ctx, grid, nil)
	assert.ErrorIs(t, err, sweep.ErrNilSampler)

	_, err = sweep.Run(ctx, core.ParameterGrid{0.5}, s)
	assert.ErrorIs(t, err, core.ErrGridTooShort)

	_, err = sweep.Run(ctx, core.ParameterGrid{1, 0}, s)
	assert.ErrorIs(t, err, core.ErrGridNotIncreasing)

	_, err = sweep.Run(ctx, grid, s, sweep.WithGapThreshold(-1))
	assert.ErrorIs(t, err, crossing.ErrBadGapThreshold)

	_, err = sweep.Run(ctx, grid, s, sweep.WithMixingThreshold(1.5))
	assert.ErrorIs(t, err, crossing.ErrBadMixingThreshold)

	_, err = sweep.Run(ctx, grid, s, sweep.WithMinSeparation(math.NaN()))
	assert.ErrorIs(t, err, crossing.ErrBadMinSeparation)

	_, err = sweep.Run(ctx, grid, s, sweep.WithPolicy(track.Policy(99)))
	assert.ErrorIs(t, err, track.ErrUnsupportedPolicy)

	_, err = sweep.Run(ctx, grid, s, sweep.WithFailureMode(sweep.FailureMode(7)))
	assert.ErrorIs(t, err, sweep.ErrBadFailureMode)
}

func TestRun_CancelledContext(t *testing.T) {
	grid := uniformGrid(-1, 1, 101)
	s := twoLevelSampler(testMu0, testDelta)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sweep.Run(ctx, grid, s)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSymSampler_SpectrumContract(t *testing.T) {
	s := twoLevelSampler(testMu0, testDelta)

	set, err := s.Sample(0.3)
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	require.NoError(t, set.ValidateOrthonormal(1e-9))

	assert.Equal(t, 2, set.Dim())
	assert.Less(t, set.Values[0], set.Values[1])

	// H has eigenvalues ±√(x² + Δ²/4).
	x := 0.3 - testMu0
	want := math.Sqrt(x*x + testDelta*testDelta/4)
	assert.InDelta(t, -want, set.Values[0], 1e-12)
	assert.InDelta(t, want, set.Values[1], 1e-12)
}

func TestMemoize_CachesSuccesses(t *testing.T) {
	calls := 0
	counted := sweep.SamplerFunc(func(mu float64) (core.EigenPairSet, error) {
		calls++

		return flatSet(mu, 2), nil
	})

	m, err := sweep.Memoize(counted, 8)
	require.NoError(t, err)

	a, err := m.Sample(0.25)
	require.NoError(t, err)
	b, err := m.Sample(0.25)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, a, b)

	_, err = m.Sample(0.75)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestMemoize_DoesNotCacheFailures(t *testing.T) {
	calls := 0
	failing := sweep.SamplerFunc(func(mu float64) (core.EigenPairSet, error) {
		calls++

		return core.EigenPairSet{}, core.ErrNumericalFailure
	})

	m, err := sweep.Memoize(failing, 8)
	require.NoError(t, err)

	_, err = m.Sample(0.5)
	require.ErrorIs(t, err, core.ErrNumericalFailure)
	_, err = m.Sample(0.5)
	require.ErrorIs(t, err, core.ErrNumericalFailure)

	assert.Equal(t, 2, calls)
}

func TestMemoize_InputValidation(t *testing.T) {
	_, err := sweep.Memoize(nil, 8)
	assert.ErrorIs(t, err, sweep.ErrNilSampler)

	_, err = sweep.Memoize(twoLevelSampler(0, 1), 0)
	assert.ErrorIs(t, err, sweep.ErrBadCacheSize)
}
