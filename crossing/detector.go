package crossing

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spectra/core"
)

// Detect runs the full classifier and returns the accepted avoided
// crossings ordered by parameter value.
//
// Contracts:
//   - trajs all cover the same grid (equal lengths, shared Mu sequence).
//   - src serves mixing for every transition step 0..N−2 and every label
//     pair appearing in trajs.
//   - Read-only: neither trajs nor src state is mutated.
//
// Errors: option sentinels from Validate, ErrNilSource,
// core.ErrDataMismatch (ragged trajectories), and errors surfaced by src.
//
// Complexity: O(N·D log D) for adjacency scans plus O(C log C) for candidate
// ordering, C = number of candidates.
func Detect(trajs []core.Trajectory, src MixingSource, opts Options) ([]Result, error) {
	cands, err := Survey(trajs, src, opts)
	if err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(cands))
	for _, c := range cands {
		if !c.Accepted {
			continue
		}
		out = append(out, Result{
			LowerLabel: c.LowerLabel,
			UpperLabel: c.UpperLabel,
			GridIndex:  c.GridIndex,
			Mu:         c.Mu,
			Gap:        c.Gap,
			Mixing:     c.Mixing,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Mu < out[b].Mu })

	return out, nil
}

// Survey returns every candidate (each interior local gap minimum below
// GapThreshold) with its mixing measurement and acceptance verdict, ordered
// by grid index. Detect is Survey filtered to the accepted set.
//
// Same contracts and errors as Detect.
func Survey(trajs []core.Trajectory, src MixingSource, opts Options) ([]Candidate, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}

	// D < 2 ⇒ nothing can cross; a short grid has no interior points.
	d := len(trajs)
	if d < 2 {
		return nil, nil
	}
	n := trajs[0].Len()
	for i := range trajs {
		if trajs[i].Len() != n || len(trajs[i].Values) != n {
			return nil, fmt.Errorf("crossing: trajectory %d: %w", i, core.ErrDataMismatch)
		}
	}
	if n < 3 {
		return nil, nil
	}

	cands, err := collectCandidates(trajs, src, opts)
	if err != nil {
		return nil, err
	}
	acceptIsolated(cands, opts.MinSeparation)

	return cands, nil
}

// collectCandidates scans every interior grid point, pairs trajectories
// adjacent in energy there, and keeps local gap minima under GapThreshold
// that pass the mixing filter. Candidates failing mixing are kept with
// Accepted=false so Survey can report them; isolation is applied later.
func collectCandidates(trajs []core.Trajectory, src MixingSource, opts Options) ([]Candidate, error) {
	var (
		n     = trajs[0].Len()
		d     = len(trajs)
		order = make([]int, d)
		cands []Candidate
	)

	for k := 1; k < n-1; k++ {
		// Energy-adjacent pairs at k: sort trajectory indices by eigenvalue,
		// ties by label for determinism.
		for i := range order {
			order[i] = i
		}
		kk := k
		sort.Slice(order, func(a, b int) bool {
			va, vb := trajs[order[a]].Values[kk], trajs[order[b]].Values[kk]
			if va != vb {
				return va < vb
			}

			return trajs[order[a]].Label < trajs[order[b]].Label
		})

		for p := 0; p+1 < d; p++ {
			lo, hi := order[p], order[p+1]

			// The pair's gap series around k; a local minimum needs a point
			// on each side (strict descent in, non-increase out).
			gPrev := math.Abs(trajs[lo].Values[k-1] - trajs[hi].Values[k-1])
			gHere := math.Abs(trajs[lo].Values[k] - trajs[hi].Values[k])
			gNext := math.Abs(trajs[lo].Values[k+1] - trajs[hi].Values[k+1])
			if !(gHere < gPrev && gHere <= gNext) || gHere > opts.GapThreshold {
				continue
			}

			// Mixing across the two steps straddling the minimum.
			mixIn, err := src.Mixing(k-1, trajs[lo].Label, trajs[hi].Label)
			if err != nil {
				return nil, fmt.Errorf("crossing: step %d: %w", k-1, err)
			}
			mixOut, err := src.Mixing(k, trajs[lo].Label, trajs[hi].Label)
			if err != nil {
				return nil, fmt.Errorf("crossing: step %d: %w", k, err)
			}
			mix := math.Max(mixIn, mixOut)

			cands = append(cands, Candidate{
				LowerLabel: trajs[lo].Label,
				UpperLabel: trajs[hi].Label,
				GridIndex:  k,
				Mu:         trajs[lo].Mu[k],
				Gap:        gHere,
				Mixing:     mix,
				Accepted:   mix >= opts.MixingThreshold,
			})
		}
	}

	return cands, nil
}

// acceptIsolated applies the MinSeparation filter in place: candidates that
// survived the mixing gate compete in ascending-gap order (grid index breaks
// ties), and any candidate within minSep of an already accepted one loses
// its verdict.
func acceptIsolated(cands []Candidate, minSep float64) {
	idx := make([]int, 0, len(cands))
	for i := range cands {
		if cands[i].Accepted {
			cands[i].Accepted = false // re-earn the verdict below
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool {
		ca, cb := cands[idx[a]], cands[idx[b]]
		if ca.Gap != cb.Gap {
			return ca.Gap < cb.Gap
		}

		return ca.GridIndex < cb.GridIndex
	})

	var accepted []float64
	for _, i := range idx {
		isolated := true
		for _, mu := range accepted {
			if math.Abs(cands[i].Mu-mu) < minSep {
				isolated = false

				break
			}
		}
		if isolated {
			cands[i].Accepted = true
			accepted = append(accepted, cands[i].Mu)
		}
	}
}
