package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/crossing"
	"github.com/katalvlaran/spectra/overlap"
	"github.com/katalvlaran/spectra/track"
)

// Run executes a full sweep over the grid and returns identity-tracked
// trajectories plus accepted avoided crossings.
//
// Stages:
//  1. Validate configuration and grid (nothing runs on bad thresholds).
//  2. Sample every grid point in parallel (bounded by WithWorkers).
//  3. Enforce a constant spectrum dimension across all valid points.
//  4. Build overlap matrices between consecutive valid points, in parallel.
//  5. Sequentially compose correspondences into the running permutation.
//  6. Assemble per-label trajectories and run the crossing detector.
//
// In Lenient mode, grid points whose sampler fails with
// core.ErrNumericalFailure are skipped and the correspondence is bridged
// between their nearest valid neighbors; every other sampler error is fatal
// in both modes. Cancelling ctx aborts between stages and mid-scan.
//
// Errors: configuration sentinels (crossing.ErrBad*, track.
// ErrUnsupportedPolicy, ErrBadFailureMode), grid sentinels from core,
// ErrNilSampler, ErrTooFewValidPoints, core.ErrNumericalFailure (strict),
// core.ErrDimensionMismatch / core.ErrDataMismatch with the offending index,
// and ctx errors.
//
// Complexity: O(N·D³) sampling+overlaps (parallel), O(N·D³) worst-case scan
// (policy-dependent), O(N·D log D) detection.
func Run(ctx context.Context, grid core.ParameterGrid, s Sampler, userOpts ...Option) (Result, error) {
	opts := gatherOptions(userOpts...)
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if s == nil {
		return Result{}, ErrNilSampler
	}
	if err := grid.Validate(); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	sets, skipped, err := sampleAll(ctx, grid, s, opts.Mode, workers, log)
	if err != nil {
		return Result{}, err
	}

	valid := make([]int, 0, len(grid))
	for k := range grid {
		if sets[k] != nil {
			valid = append(valid, k)
		}
	}
	if len(valid) < 2 {
		return Result{}, ErrTooFewValidPoints
	}

	// Constant dimension across the whole sweep, or nothing.
	d := sets[valid[0]].Dim()
	for _, k := range valid[1:] {
		if sets[k].Dim() != d {
			return Result{}, fmt.Errorf("sweep: grid index %d: %w", k, core.ErrDimensionMismatch)
		}
	}

	overlaps, err := buildOverlaps(ctx, sets, valid, workers)
	if err != nil {
		return Result{}, err
	}

	tracker, trajs, err := scan(ctx, grid, sets, valid, overlaps, d, opts.Policy)
	if err != nil {
		return Result{}, err
	}

	crossings, err := crossing.Detect(trajs, tracker, opts.crossingOptions())
	if err != nil {
		return Result{}, err
	}

	log.Info("sweep complete",
		zap.Int("points", len(valid)),
		zap.Int("skipped", len(skipped)),
		zap.Int("dimension", d),
		zap.Int("crossings", len(crossings)))

	return Result{Trajectories: trajs, Crossings: crossings, Skipped: skipped}, nil
}

// sampleAll evaluates the sampler at every grid point on a bounded worker
// pool. It returns one *EigenPairSet per point (nil where a lenient skip
// occurred) plus the skipped original indices, ascending.
func sampleAll(ctx context.Context, grid core.ParameterGrid, s Sampler, mode FailureMode, workers int, log *zap.Logger) ([]*core.EigenPairSet, []int, error) {
	sets := make([]*core.EigenPairSet, len(grid))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range grid {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			set, err := s.Sample(grid[k])
			if err != nil {
				if mode == Lenient && errors.Is(err, core.ErrNumericalFailure) {
					log.Warn("skipping grid point after solver failure",
						zap.Int("index", k),
						zap.Float64("mu", grid[k]),
						zap.Error(err))

					return nil // leave sets[k] nil; bridged later
				}

				return fmt.Errorf("sweep: grid index %d: %w", k, err)
			}
			if err = set.Validate(); err != nil {
				return fmt.Errorf("sweep: grid index %d: %w", k, err)
			}
			sets[k] = &set

			log.Debug("sampled grid point",
				zap.Int("index", k),
				zap.Float64("mu", grid[k]),
				zap.Int("dimension", set.Dim()))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	skipped := make([]int, 0)
	for k := range sets {
		if sets[k] == nil {
			skipped = append(skipped, k)
		}
	}

	return sets, skipped, nil
}

// buildOverlaps constructs the overlap matrix of every transition between
// consecutive valid grid points. Steps are independent and run in parallel.
func buildOverlaps(ctx context.Context, sets []*core.EigenPairSet, valid []int, workers int) ([]core.OverlapMatrix, error) {
	overlaps := make([]core.OverlapMatrix, len(valid)-1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for e := range overlaps {
		e := e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			m, err := overlap.Build(*sets[valid[e]], *sets[valid[e+1]])
			if err != nil {
				return fmt.Errorf("sweep: step %d (grid %d→%d): %w", e, valid[e], valid[e+1], err)
			}
			overlaps[e] = m

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overlaps, nil
}

// scan runs the strictly sequential part: correspondence composition in
// increasing parameter order, then trajectory assembly. Completed steps
// stay valid if ctx aborts mid-scan.
func scan(ctx context.Context, grid core.ParameterGrid, sets []*core.EigenPairSet, valid []int, overlaps []core.OverlapMatrix, d int, policy track.Policy) (*track.Tracker, []core.Trajectory, error) {
	tracker, err := track.NewTracker(d, policy)
	if err != nil {
		return nil, nil, err
	}

	// position[e][label] = raw index the label holds at valid point e.
	position := make([][]int, len(valid))
	position[0] = make([]int, d)
	for i := range position[0] {
		position[0][i] = i
	}

	cur := track.CorrespondenceMap(position[0])
	for e, m := range overlaps {
		if err = ctx.Err(); err != nil {
			return nil, nil, err
		}

		corr, aerr := tracker.Advance(m)
		if aerr != nil {
			return nil, nil, aerr
		}
		cur = track.Compose(cur, corr)
		position[e+1] = cur
	}

	trajs := make([]core.Trajectory, d)
	for label := 0; label < d; label++ {
		t := core.Trajectory{
			Label:   label,
			Mu:      make([]float64, len(valid)),
			Values:  make([]float64, len(valid)),
			Vectors: make([][]float64, len(valid)),
		}
		for e, k := range valid {
			raw := position[e][label]
			t.Mu[e] = grid[k]
			t.Values[e] = sets[k].Values[raw]
			t.Vectors[e] = sets[k].Vectors[raw]
		}
		trajs[label] = t
	}

	return tracker, trajs, nil
}
