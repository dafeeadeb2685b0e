// SPDX-License-Identifier: MIT

package permanent

// NaiveMC estimates the permanent of a from samples uniform random
// permutations:
//
//	estimate = n! · mean(∏_i a[i][σ(i)])
//
// Each uniform σ has probability 1/n!, so the product's expectation is
// perm(a)/n! and the n! scaling makes the estimator unbiased.
//
// The estimator is "naive" because its relative variance is unbounded
// under concentration: on a diagonal-dominant matrix almost every draw
// contributes a near-zero product and the rare high-product permutation
// dominates. Use ImportanceSampling when that bites.
//
// Errors: validateMatrix sentinels, ErrSampleCount.
//
// Complexity: O(S·n) time, O(n) space.
func NaiveMC(a [][]float64, samples int, opts Options) (Result, error) {
	n, err := validateMatrix(a)
	if err != nil {
		return Result{}, err
	}
	if err = validateSamples(samples); err != nil {
		return Result{}, err
	}

	var (
		rng  = rngFromSeed(opts.Seed)
		sum  float64
		prod float64
		i    int
	)
	for s := 0; s < samples; s++ {
		sigma := rng.Perm(n) // uniform over all n! permutations
		prod = 1.0
		for i = 0; i < n; i++ {
			prod *= a[i][sigma[i]]
			if prod == 0 {
				break
			}
		}
		sum += prod
	}

	return Result{
		Method:  MethodNaiveMC,
		Order:   n,
		Samples: samples,
		Seed:    effectiveSeed(opts.Seed),
		Value:   factorial(n) * sum / float64(samples),
	}, nil
}
