// Package experiment runs repeated, independently seeded permanent
// estimations and summarizes them (mean, standard deviation) for a
// reporting layer. The estimation core stays in package permanent; this
// package is the collaborator that builds empirical distributions out of
// i.i.d. estimates.
//
// Each repetition derives its own RNG seed from the experiment seed via
// a SplitMix64-style mix, so repetitions are decorrelated yet the whole
// experiment replays exactly from one seed.
package experiment

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/dstrand/simlab/permanent"
)

var (
	// ErrNilEstimator indicates a nil Estimator was passed to Run.
	ErrNilEstimator = errors.New("experiment: nil estimator")

	// ErrRepeatCount indicates a repetition count < 1.
	ErrRepeatCount = errors.New("experiment: repeat count must be >= 1")
)

// Estimator is any permanent estimator with the package permanent call
// shape. permanent.NaiveMC and permanent.ImportanceSampling satisfy it.
type Estimator func(a [][]float64, samples int, opts permanent.Options) (permanent.Result, error)

// Summary describes the empirical distribution of repeated estimates
// from one estimator.
type Summary struct {
	// Method is the estimator that produced the values.
	Method permanent.Method

	// Estimates holds one value per repetition, in run order.
	Estimates []float64

	// Mean is the sample mean of Estimates.
	Mean float64

	// StdDev is the corrected sample standard deviation of Estimates
	// (0 when there is a single repetition).
	StdDev float64
}

// Comparison pairs the two Monte Carlo estimators on one matrix, with
// the exact permanent as ground truth when the matrix order admits it.
type Comparison struct {
	Order   int
	Samples int
	Repeats int

	// Exact is the enumerated permanent; valid only when HasExact is
	// true (false means the order exceeded the exact-size guard).
	Exact    float64
	HasExact bool

	Naive      Summary
	Importance Summary
}

// Run invokes est repeats times on a, each call with samples samples and
// an independently derived seed, and summarizes the estimates.
// seed==0 follows the package permanent default-seed policy.
//
// Errors: ErrNilEstimator, ErrRepeatCount, and whatever the estimator
// returns (first failure aborts the run).
//
// Complexity: repeats × the estimator's cost, plus O(repeats) summary.
func Run(est Estimator, a [][]float64, samples, repeats int, seed int64) (Summary, error) {
	if est == nil {
		return Summary{}, ErrNilEstimator
	}
	if repeats < 1 {
		return Summary{}, ErrRepeatCount
	}

	var (
		sum = Summary{Estimates: make([]float64, 0, repeats)}
		res permanent.Result
		err error
		r   int
	)
	for r = 0; r < repeats; r++ {
		res, err = est(a, samples, permanent.Options{Seed: deriveSeed(seed, uint64(r))})
		if err != nil {
			return Summary{}, fmt.Errorf("repetition %d: %w", r, err)
		}
		sum.Estimates = append(sum.Estimates, res.Value)
	}
	sum.Method = res.Method
	sum.Mean = stat.Mean(sum.Estimates, nil)
	if repeats > 1 {
		sum.StdDev = stat.StdDev(sum.Estimates, nil)
	}

	return sum, nil
}

// Compare runs NaiveMC and ImportanceSampling side by side on a, with
// equal sample counts and the same derived seed schedule, and attaches
// the exact permanent when the order is within the enumeration guard.
//
// Errors: validation errors from package permanent, ErrRepeatCount.
func Compare(a [][]float64, samples, repeats int, seed int64) (Comparison, error) {
	naive, err := Run(permanent.NaiveMC, a, samples, repeats, seed)
	if err != nil {
		return Comparison{}, err
	}
	imp, err := Run(permanent.ImportanceSampling, a, samples, repeats, seed)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{
		Order:      len(a),
		Samples:    samples,
		Repeats:    repeats,
		Naive:      naive,
		Importance: imp,
	}

	exact, err := permanent.Exact(a, permanent.DefaultOptions())
	switch {
	case err == nil:
		cmp.Exact = exact.Value
		cmp.HasExact = true
	case errors.Is(err, permanent.ErrTooLarge):
		// order beyond the guard: comparison proceeds without ground truth
	default:
		return Comparison{}, err
	}

	return cmp, nil
}

// deriveSeed mixes the experiment seed and a repetition index into an
// independent 64-bit seed (SplitMix64 finalizer; the canonical constants
// give full-width avalanche so consecutive indices land far apart).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
