package sweep

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/crossing"
	"github.com/katalvlaran/spectra/track"
)

// Sentinel errors returned by the sweep package.
var (
	// ErrNilSampler indicates a nil Sampler was supplied.
	ErrNilSampler = errors.New("sweep: sampler is nil")

	// ErrBadFailureMode indicates a FailureMode outside the declared enum.
	ErrBadFailureMode = errors.New("sweep: unsupported failure mode")

	// ErrBadCacheSize indicates a Memoize capacity < 1.
	ErrBadCacheSize = errors.New("sweep: cache size must be >= 1")

	// ErrTooFewValidPoints indicates that, after lenient skipping, fewer
	// than two grid points produced usable spectra.
	ErrTooFewValidPoints = errors.New("sweep: fewer than two valid grid points")
)

// Sampler produces the full spectrum of the underlying operator at one
// parameter value. Implementations must be deterministic, pure functions of
// μ with a fixed dimension D across all calls, and must surface solver
// non-convergence as core.ErrNumericalFailure (wrapped or bare).
type Sampler interface {
	Sample(mu float64) (core.EigenPairSet, error)
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(mu float64) (core.EigenPairSet, error)

// Sample calls f(mu).
func (f SamplerFunc) Sample(mu float64) (core.EigenPairSet, error) { return f(mu) }

// FailureMode selects how Run treats eigensolver non-convergence at
// individual grid points.
type FailureMode int

const (
	// Strict aborts the sweep on the first failed grid point. The default;
	// the safer choice when every point matters.
	Strict FailureMode = iota

	// Lenient skips failed grid points and bridges the correspondence
	// between the nearest valid neighbors on either side.
	Lenient
)

// Options configures a sweep run. Zero value is NOT usable; build via
// DefaultOptions or Run's functional options.
type Options struct {
	// GapThreshold, MixingThreshold, MinSeparation feed the crossing
	// detector; see the crossing package for semantics and defaults.
	GapThreshold    float64
	MixingThreshold float64
	MinSeparation   float64

	// Policy selects the state-matching strategy (track.Greedy or
	// track.OptimalAssignment).
	Policy track.Policy

	// Mode selects Strict or Lenient failure handling.
	Mode FailureMode

	// Workers bounds the parallel sampling and overlap stages; values < 1
	// mean "one worker per CPU".
	Workers int

	// Logger receives structured progress events; nil means no logging.
	Logger *zap.Logger
}

// Option mutates Options. Public entry points accept ...Option and resolve
// them against DefaultOptions, last-writer-wins.
type Option func(*Options)

// DefaultOptions returns the documented defaults: crossing-package
// thresholds, greedy matching, strict failure handling, one worker per CPU,
// no logging.
func DefaultOptions() Options {
	return Options{
		GapThreshold:    crossing.DefaultGapThreshold,
		MixingThreshold: crossing.DefaultMixingThreshold,
		MinSeparation:   crossing.DefaultMinSeparation,
		Policy:          track.Greedy,
		Mode:            Strict,
		Workers:         0,
		Logger:          nil,
	}
}

// WithGapThreshold sets the largest local-minimum gap still considered a
// candidate crossing. Validated (must be positive and finite) before any
// computation in Run.
func WithGapThreshold(v float64) Option {
	return func(o *Options) { o.GapThreshold = v }
}

// WithMixingThreshold sets the least eigenvector mixing a candidate must
// show. Validated (must lie in [0,1]) before any computation in Run.
func WithMixingThreshold(v float64) Option {
	return func(o *Options) { o.MixingThreshold = v }
}

// WithMinSeparation sets the closest two accepted crossings may sit in
// parameter space. Validated (must be positive and finite) before any
// computation in Run.
func WithMinSeparation(v float64) Option {
	return func(o *Options) { o.MinSeparation = v }
}

// WithPolicy selects the matching strategy at configuration time.
func WithPolicy(p track.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithFailureMode selects Strict or Lenient handling of solver failures.
func WithFailureMode(m FailureMode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithWorkers bounds the parallel sampling/overlap stages; n < 1 restores
// the one-worker-per-CPU default.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger attaches a zap logger to the run. The numeric core never logs;
// only the driver emits progress events.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result is the serializable outcome of a sweep: identity-tracked
// trajectories, accepted crossings ordered by parameter value, and (in
// lenient mode) the original grid indices that were skipped.
type Result struct {
	Trajectories []core.Trajectory
	Crossings    []crossing.Result
	Skipped      []int
}

// gatherOptions resolves functional options against DefaultOptions.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// crossingOptions projects the sweep thresholds onto the detector's config.
func (o Options) crossingOptions() crossing.Options {
	return crossing.Options{
		GapThreshold:    o.GapThreshold,
		MixingThreshold: o.MixingThreshold,
		MinSeparation:   o.MinSeparation,
	}
}

// validate rejects bad configuration before any sampling starts.
//
// Errors: crossing threshold sentinels, track.ErrUnsupportedPolicy,
// ErrBadFailureMode.
func (o Options) validate() error {
	if err := o.crossingOptions().Validate(); err != nil {
		return err
	}
	if o.Policy != track.Greedy && o.Policy != track.OptimalAssignment {
		return track.ErrUnsupportedPolicy
	}
	if o.Mode != Strict && o.Mode != Lenient {
		return ErrBadFailureMode
	}

	return nil
}
