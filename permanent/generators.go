// SPDX-License-Identifier: MIT

package permanent

import "math"

// Default entry values for HardMatrix. The 50:1 diagonal-to-off-diagonal
// ratio concentrates the permanent's mass on near-identity permutations,
// which is exactly the regime that breaks NaiveMC's variance.
const (
	DefaultHardDiag    = 5.0
	DefaultHardOffDiag = 0.1
)

// UniformMatrix returns an n×n matrix with entries drawn i.i.d. uniform
// on [0,1), deterministically from opts.Seed.
//
// Errors: ErrBadOrder for n < 1.
//
// Complexity: O(n²).
func UniformMatrix(n int, opts Options) ([][]float64, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	var (
		rng = rngFromSeed(opts.Seed)
		a   = make([][]float64, n)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			a[i][j] = rng.Float64()
		}
	}

	return a, nil
}

// HardMatrix returns the default diagonal-dominant stress matrix:
// diagonal DefaultHardDiag, off-diagonal DefaultHardOffDiag.
//
// Errors: ErrBadOrder for n < 1.
func HardMatrix(n int) ([][]float64, error) {
	return HardMatrixValues(n, DefaultHardDiag, DefaultHardOffDiag)
}

// HardMatrixValues returns an n×n matrix with the given diagonal and
// off-diagonal constants. Both must be finite and non-negative.
//
// Errors: ErrBadOrder, ErrNaNInf, ErrNegativeEntry.
//
// Complexity: O(n²).
func HardMatrixValues(n int, diag, offDiag float64) ([][]float64, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	for _, v := range [2]float64{diag, offDiag} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
		if v < 0 {
			return nil, ErrNegativeEntry
		}
	}

	var (
		a = make([][]float64, n)
		i int
		j int
	)
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			a[i][j] = offDiag
		}
		a[i][i] = diag
	}

	return a, nil
}
