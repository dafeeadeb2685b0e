// SPDX-License-Identifier: MIT

// Package permanent: sentinel error set.
// All public functions return ONLY these sentinels (optionally wrapped
// with fmt.Errorf("...: %w", ...) for coordinates); tests match them via
// errors.Is. Panics are reserved for programmer errors in private
// helpers, never for user input.

package permanent

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix was passed where one is required.
	ErrNilMatrix = errors.New("permanent: nil matrix")

	// ErrBadOrder indicates a matrix (or requested size) of order n < 1.
	ErrBadOrder = errors.New("permanent: matrix order must be >= 1")

	// ErrNonSquare indicates a ragged or rectangular matrix where a square
	// one is required. Row i with len != n triggers this, not ErrBadOrder.
	ErrNonSquare = errors.New("permanent: matrix is not square")

	// ErrNegativeEntry indicates a negative entry. Proportional column
	// selection is undefined for negative values, so the whole package
	// restricts inputs to non-negative matrices.
	ErrNegativeEntry = errors.New("permanent: negative entry")

	// ErrNaNInf indicates a NaN or ±Inf entry; all inputs must be finite.
	ErrNaNInf = errors.New("permanent: NaN or Inf entry")

	// ErrSampleCount indicates a Monte Carlo sample count < 1.
	ErrSampleCount = errors.New("permanent: sample count must be >= 1")

	// ErrTooLarge is returned by Exact when n exceeds Options.MaxExactN.
	// The guard is resource protection, not a correctness bound: raise
	// MaxExactN if you can afford the n! wait.
	ErrTooLarge = errors.New("permanent: matrix too large for exact enumeration")

	// ErrBadOptions indicates an internally inconsistent Options value
	// (e.g. negative MaxExactN).
	ErrBadOptions = errors.New("permanent: invalid options")
)
