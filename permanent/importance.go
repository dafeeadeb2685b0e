// SPDX-License-Identifier: MIT

package permanent

// ImportanceSampling estimates the permanent of a by building each
// sample's permutation row by row: at row i it picks one still-available
// column with probability proportional to a[i][col], multiplies the
// running weight by the raw row sum over available columns, and removes
// the column. The estimate is the mean of the S sample weights.
//
// Why the raw row sum and not a renormalized probability: the chance of
// drawing a specific σ under this scheme is ∏_i a[i][σ(i)] / ∏_i rowSum_i,
// so the weight ∏_i rowSum_i cancels the denominator exactly and
// E[weight] = Σ_σ ∏_i a[i][σ(i)] = perm(a). Multiplying by anything else
// breaks unbiasedness.
//
// Sampling preferentially follows large entries — the same structure
// that carries the permanent's mass — so the variance never exceeds
// NaiveMC's on non-negative input and collapses to zero on diagonal
// matrices.
//
// A zero row sum mid-sample means the partial assignment cannot extend
// to a nonzero-product permutation: the sample's weight is 0 and the
// remaining rows are skipped. That is a valid outcome, not an error;
// estimates may mix zero and nonzero weights freely.
//
// Errors: validateMatrix sentinels, ErrSampleCount.
//
// Complexity: O(S·n²) time, O(n) space.
func ImportanceSampling(a [][]float64, samples int, opts Options) (Result, error) {
	n, err := validateMatrix(a)
	if err != nil {
		return Result{}, err
	}
	if err = validateSamples(samples); err != nil {
		return Result{}, err
	}

	var (
		rng   = rngFromSeed(opts.Seed)
		avail = make([]int, n) // columns not yet assigned, swap-removed
		sum   float64
	)
	for s := 0; s < samples; s++ {
		sum += sampleWeight(a, n, avail, rng)
	}

	return Result{
		Method:  MethodImportance,
		Order:   n,
		Samples: samples,
		Seed:    effectiveSeed(opts.Seed),
		Value:   sum / float64(samples),
	}, nil
}

// sampleWeight draws one permutation under the proportional scheme and
// returns its importance weight (0 when a row dead-ends). avail is
// caller-provided scratch of length n, reinitialized here.
func sampleWeight(a [][]float64, n int, avail []int, rng randSource) float64 {
	var (
		i       int
		j       int
		left    int // number of still-available columns
		rowSum  float64
		u       float64
		weight  float64
		chosen  int
		acc     float64
		rowVals []float64
	)
	for i = 0; i < n; i++ {
		avail[i] = i
	}
	left = n
	weight = 1.0

	for i = 0; i < n; i++ {
		rowVals = a[i]
		rowSum = 0
		for j = 0; j < left; j++ {
			rowSum += rowVals[avail[j]]
		}
		if rowSum == 0 {
			// No available column can extend this assignment to a
			// nonzero product; the sample contributes weight 0.
			return 0
		}

		// Proportional pick: walk the cumulative sums until u falls in.
		u = rng.Float64() * rowSum
		chosen = left - 1 // guards FP edge where acc never reaches u
		acc = 0
		for j = 0; j < left; j++ {
			acc += rowVals[avail[j]]
			if u < acc {
				chosen = j
				break
			}
		}

		weight *= rowSum // raw row sum, NOT a renormalized probability
		avail[chosen] = avail[left-1]
		left--
	}

	return weight
}

// randSource is the single method sampleWeight needs; *rand.Rand
// satisfies it and tests can substitute scripted sequences.
type randSource interface {
	Float64() float64
}
