// SPDX-License-Identifier: MIT

// Package permanent computes and estimates the permanent of a square
// matrix with non-negative entries.
//
// 🚀 What is the permanent?
//
//	For an n×n matrix A, perm(A) = Σ_σ ∏_i A[i][σ(i)] over all
//	permutations σ — a determinant without sign alternation.
//	Computing it exactly is #P-hard; even for modest n the n! terms
//	make brute force the scalability wall that Monte Carlo exists to
//	climb over.
//
// The package offers three methods on a plain [][]float64:
//
//   - Exact — enumerates all n! permutations and sums the products.
//     Time: O(n!·n). Guarded by Options.MaxExactN (default 10).
//
//   - NaiveMC — draws S uniform random permutations and returns
//     n!·mean(∏_i A[i][σ(i)]). Unbiased, but the relative variance
//     explodes when the permanent's mass concentrates on few
//     permutations (e.g. diagonal-dominant matrices).
//
//   - ImportanceSampling — builds each permutation column-by-column,
//     choosing an available column with probability proportional to the
//     row entry, and weights the sample by the product of the raw row
//     sums. Unbiased for any non-negative matrix, with variance no
//     greater than NaiveMC for equal sample counts.
//
// Supporting surface:
//
//   - EnumeratePermutations — lazy iterator over all permutations of
//     {0..n-1} (Heap's algorithm), exactly once each.
//   - UniformMatrix / HardMatrix — test-input generators.
//
// Determinism: all sampling is driven by Options.Seed. seed==0 selects
// a fixed internal default, so results are reproducible by default and
// never depend on hidden global random state.
//
// Errors: strict package sentinels only (ErrNonSquare, ErrSampleCount,
// ErrTooLarge, ...); match with errors.Is. No panics on user input.
package permanent
