// SPDX-License-Identifier: MIT

// Package permanent - input validation shared by all entry points.
//
// Deterministic, side-effect free, sentinel-only returns. Error
// priority (enforced in tests): nil -> order -> shape -> NaN/Inf ->
// negativity.

package permanent

import (
	"fmt"
	"math"
)

// validateMatrix verifies that a is a square matrix of order n >= 1 with
// finite, non-negative entries, and returns n.
//
// Complexity: O(n²) time, O(1) space.
func validateMatrix(a [][]float64) (int, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}

	n := len(a)
	if n < 1 {
		return 0, ErrBadOrder
	}

	var (
		i int
		j int
		v float64
	)
	for i = 0; i < n; i++ {
		if len(a[i]) != n {
			return 0, fmt.Errorf("row %d has length %d, want %d: %w", i, len(a[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			v = a[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
			if v < 0 {
				return 0, fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNegativeEntry)
			}
		}
	}

	return n, nil
}

// validateSamples verifies a Monte Carlo sample count.
//
// Complexity: O(1).
func validateSamples(samples int) error {
	if samples < 1 {
		return ErrSampleCount
	}

	return nil
}
