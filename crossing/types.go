package crossing

import (
	"errors"
	"math"
)

// Sentinel errors returned by the crossing package.
var (
	// ErrBadGapThreshold indicates GapThreshold ≤ 0 or non-finite.
	ErrBadGapThreshold = errors.New("crossing: GapThreshold must be positive and finite")

	// ErrBadMixingThreshold indicates MixingThreshold outside [0,1].
	ErrBadMixingThreshold = errors.New("crossing: MixingThreshold must lie in [0,1]")

	// ErrBadMinSeparation indicates MinSeparation ≤ 0 or non-finite.
	ErrBadMinSeparation = errors.New("crossing: MinSeparation must be positive and finite")

	// ErrNilSource indicates a nil mixing source.
	ErrNilSource = errors.New("crossing: mixing source is nil")
)

// Default classification thresholds. They are conventional starting points,
// not physics: real sweeps tune all three to their energy and parameter
// scales.
const (
	// DefaultGapThreshold is the largest local-minimum gap still considered
	// a candidate crossing.
	DefaultGapThreshold = 1e-2

	// DefaultMixingThreshold is the least eigenvector mixing a candidate
	// must show to count as a genuine exchange.
	DefaultMixingThreshold = 0.5

	// DefaultMinSeparation is the closest two accepted crossings may sit in
	// parameter space.
	DefaultMinSeparation = 1e-3
)

// MixingSource supplies per-step eigenvector mixing magnitudes between two
// identity labels. *track.Tracker satisfies it; tests substitute stubs.
type MixingSource interface {
	// Mixing reports the mixing magnitude between identities a and b across
	// transition step stepIdx (grid point stepIdx → stepIdx+1), in [0,1].
	Mixing(stepIdx, a, b int) (float64, error)
}

// Options holds the three classification thresholds.
//
// GapThreshold    – candidate gate: local gap minima above it are ignored.
// MixingThreshold – false-positive filter: candidates whose identities did
//                   not genuinely exchange eigenvector character are dropped.
// MinSeparation   – isolation radius: candidate clusters collapse to their
//                   smallest-gap member.
type Options struct {
	GapThreshold    float64
	MixingThreshold float64
	MinSeparation   float64
}

// DefaultOptions returns Options filled with the documented defaults.
func DefaultOptions() Options {
	return Options{
		GapThreshold:    DefaultGapThreshold,
		MixingThreshold: DefaultMixingThreshold,
		MinSeparation:   DefaultMinSeparation,
	}
}

// Validate rejects out-of-range thresholds before any computation begins.
//
// Errors: ErrBadGapThreshold, ErrBadMixingThreshold, ErrBadMinSeparation.
func (o Options) Validate() error {
	if math.IsNaN(o.GapThreshold) || math.IsInf(o.GapThreshold, 0) || o.GapThreshold <= 0 {
		return ErrBadGapThreshold
	}
	if math.IsNaN(o.MixingThreshold) || o.MixingThreshold < 0 || o.MixingThreshold > 1 {
		return ErrBadMixingThreshold
	}
	if math.IsNaN(o.MinSeparation) || math.IsInf(o.MinSeparation, 0) || o.MinSeparation <= 0 {
		return ErrBadMinSeparation
	}

	return nil
}

// Candidate is one local gap minimum under GapThreshold, with its measured
// mixing and the final acceptance verdict.
type Candidate struct {
	// LowerLabel and UpperLabel are the identity labels of the two
	// eigenvalue-adjacent trajectories, lower energy first at the minimum.
	LowerLabel int
	UpperLabel int

	// GridIndex is the interior grid position of the local minimum.
	GridIndex int

	// Mu is the parameter value at GridIndex.
	Mu float64

	// Gap is the minimal energy gap.
	Gap float64

	// Mixing is the eigenvector mixing magnitude measured across the steps
	// straddling the minimum.
	Mixing float64

	// Accepted reports the verdict after the mixing and isolation filters.
	Accepted bool
}

// Result is one accepted avoided crossing.
type Result struct {
	// LowerLabel and UpperLabel are the identity labels of the two
	// eigenvalue-adjacent trajectories, lower energy first at the minimum.
	LowerLabel int
	UpperLabel int

	// GridIndex is the grid position of the gap minimum.
	GridIndex int

	// Mu is the parameter location of the crossing.
	Mu float64

	// Gap is the minimal energy gap (≤ GapThreshold).
	Gap float64

	// Mixing is the measured mixing magnitude (≥ MixingThreshold).
	Mixing float64
}
