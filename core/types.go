package core

// ParameterGrid is an ordered sequence of sweep positions μ.
// A valid grid has length ≥ 2 and strictly increasing, finite entries.
type ParameterGrid []float64

// EigenPairSet holds the full spectrum reported by a solver at one grid
// point: D eigenvalues with their unit-norm eigenvectors.
//
// Vectors[i] is the eigenvector belonging to Values[i]; every vector has
// length D (the eigenbasis spans the operator's own space). Eigenvectors
// carry an arbitrary, unobservable global sign — consumers must compare
// them only through inner-product magnitudes.
type EigenPairSet struct {
	// Mu is the parameter value this spectrum was sampled at.
	Mu float64

	// Values are the eigenvalues, in whatever order the solver produced.
	Values []float64

	// Vectors[i] is the unit eigenvector for Values[i].
	Vectors [][]float64
}

// Dim returns the dimension D of the set (number of eigenpairs).
func (s EigenPairSet) Dim() int { return len(s.Values) }

// OverlapMatrix is the D×D matrix of inner-product magnitudes between two
// orthonormal eigenbases: entry (i,j) = |⟨vᵢ(μₖ), vⱼ(μₖ₊₁)⟩| ∈ [0,1].
//
// For exactly orthonormal inputs the squared entries of every row and every
// column sum to 1 (both bases resolve the same identity), a property checked
// in tests via SumSquaredRow/SumSquaredCol.
type OverlapMatrix [][]float64

// Dim returns the matrix dimension D (rows; square by construction).
func (m OverlapMatrix) Dim() int { return len(m) }

// At returns entry (i,j). Callers index within [0,Dim); this is a hot-path
// accessor and performs no bounds checking beyond the slice's own.
func (m OverlapMatrix) At(i, j int) float64 { return m[i][j] }

// SumSquaredRow returns Σⱼ m[i][j]², the row-i resolution of identity.
func (m OverlapMatrix) SumSquaredRow(i int) float64 {
	var s float64
	for _, v := range m[i] {
		s += v * v
	}

	return s
}

// SumSquaredCol returns Σᵢ m[i][j]², the column-j resolution of identity.
func (m OverlapMatrix) SumSquaredCol(j int) float64 {
	var s float64
	for i := range m {
		s += m[i][j] * m[i][j]
	}

	return s
}

// Trajectory follows one persistent identity label across the whole sweep:
// at every recorded grid point it stores the parameter value, the eigenvalue
// and the eigenvector that this identity owns there.
//
// Across all labels the trajectories merely relabel the raw spectra: at each
// grid point the multiset of trajectory eigenvalues equals the unordered
// eigenvalue set reported by the sampler.
type Trajectory struct {
	// Label is the persistent identity: the index this state had at the
	// first grid point of the sweep.
	Label int

	// Mu holds the parameter values of the recorded grid points, ascending.
	Mu []float64

	// Values[k] is the eigenvalue owned by this identity at Mu[k].
	Values []float64

	// Vectors[k] is the eigenvector owned by this identity at Mu[k].
	Vectors [][]float64
}

// Len returns the number of grid points recorded on the trajectory.
func (t Trajectory) Len() int { return len(t.Mu) }
