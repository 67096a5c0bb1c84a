// Package spectra tracks eigenstate identity across parameter sweeps of
// Hermitian operators and classifies genuine avoided level crossings.
//
// 🚀 What is spectra?
//
//	When a Hermitian operator H(μ) varies continuously with a scalar
//	parameter μ, its eigenvalues can approach, repel, and exchange order.
//	Raw solvers return eigenpairs sorted by value, so the "third state"
//	at one μ may be the "fourth state" at the next.  spectra restores
//	continuity: it decides which eigenvector *is* which state across the
//	whole sweep, and tells true avoided crossings apart from numerical
//	false positives.
//
// ✨ Key features:
//   - overlap matrices between adjacent orthonormal eigenbases
//   - greedy or optimal-assignment (Hungarian) state matching
//   - running total permutation ⇒ persistent identity labels
//   - avoided-crossing detection: local gap minima filtered by
//     eigenvector mixing and parameter-space isolation
//   - strict or lenient handling of solver non-convergence
//   - embarrassingly parallel sampling, strictly sequential scan
//
// Everything is organized under five subpackages:
//
//	core/     — shared records: grids, eigenpair sets, trajectories
//	overlap/  — pairwise inner-product magnitude matrices
//	track/    — correspondence maps & the continuity Tracker
//	crossing/ — the avoided-crossing Detector
//	sweep/    — the driver wiring sampler → overlap → track → crossing
//
// Quick ASCII example — two levels repelling at μ₀ (an avoided crossing):
//
//	E ↑        ╲         ╱
//	  │         ╲_______╱   ← gap Δ at μ₀, eigenvectors swap roles
//	  │         ╱       ╲
//	  │        ╱         ╲
//	  └──────────────────────→ μ
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/spectra
package spectra
