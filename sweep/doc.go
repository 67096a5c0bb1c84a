// Package sweep drives a full parameter sweep: it samples spectra across a
// grid, builds overlap matrices, runs the continuity tracker's sequential
// scan, and hands the identity-tracked trajectories to the crossing
// detector.
//
// Data flows strictly forward:
//
//	Sampler → overlap.Build → track.Tracker → crossing.Detect → Result
//
// Concurrency model:
//   - Sampling is embarrassingly parallel (a Sampler is a pure function of
//     μ) and runs on an errgroup bounded by WithWorkers.
//   - Overlap construction for step k needs only the spectra at k and k+1
//     and runs in parallel too.
//   - The running-permutation scan is inherently sequential — step k's
//     cumulative mapping depends on all prior steps — and is executed in
//     increasing parameter order by a single goroutine. No locks anywhere:
//     all data is immutable after construction or exclusively owned.
//
// Failure handling:
//   - Strict (default): the first eigensolver non-convergence aborts the
//     sweep with the offending grid index.
//   - Lenient: failed grid points are skipped and the correspondence is
//     bridged by building the overlap between the nearest valid neighbors
//     on either side; skipped indices are reported on the Result.
//   - Dimension drift between grid points is always fatal
//     (core.ErrDimensionMismatch), as are violated internal invariants
//     (core.ErrDataMismatch) — never silently patched.
//
// Thresholds, matching policy, worker bound and the optional zap logger are
// supplied as functional options; out-of-range values are rejected before
// any sampling begins. Cancelling the context aborts the sweep early —
// everything already produced for completed grid points remains valid.
//
// The package also ships two sampler adapters: SymSampler diagonalizes
// caller-built gonum symmetric matrices, and Memoize wraps any Sampler in a
// bounded LRU cache (explicit eviction, no ambient global state).
package sweep
