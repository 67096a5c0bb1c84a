// Package crossing finds and classifies avoided level crossings on
// identity-tracked eigenvalue trajectories.
//
// A gap-only scan ("flag every close approach") produces large numbers of
// false positives: numerical noise and coincidental near-degeneracies close
// gaps without any physics happening. The detector therefore demands three
// things of a candidate before accepting it:
//
//  1. Local gap minimum — the energy gap between two eigenvalue-adjacent
//     trajectories attains an interior local minimum below GapThreshold.
//     Boundary grid points never qualify (a minimum needs a point on each
//     side).
//  2. Strong mixing — the eigenvector mixing between the two identities
//     across the steps straddling the minimum reaches MixingThreshold.
//     A closing gap with frozen eigenvectors is not an avoided crossing.
//  3. Isolation — no other accepted crossing lies within MinSeparation in
//     parameter space; clusters collapse to their smallest-gap member
//     (ties broken by ascending grid index).
//
// The detector is read-only over fully built trajectories, deterministic
// for identical inputs, and returns accepted crossings ordered by parameter
// value. Dimension D < 2 yields an empty result; ragged trajectory shapes
// are fatal (core.ErrDataMismatch), never silently patched.
package crossing
