package experiment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dstrand/simlab/experiment"
	"github.com/dstrand/simlab/permanent"
)

// TestRun_UnbiasednessBothEstimators checks the statistical core
// property: the mean of many independent estimates converges to the
// enumerated permanent, for both estimators. Tolerances sit around ten
// standard errors, so a failure indicates a real bias, not bad luck.
func TestRun_UnbiasednessBothEstimators(t *testing.T) {
	a, err := permanent.UniformMatrix(4, permanent.Options{Seed: 6})
	require.NoError(t, err)
	exact, err := permanent.Exact(a, permanent.DefaultOptions())
	require.NoError(t, err)
	require.Greater(t, exact.Value, 0.0)

	const (
		samples = 500
		repeats = 200
		seed    = 99
	)

	naive, err := experiment.Run(permanent.NaiveMC, a, samples, repeats, seed)
	require.NoError(t, err)
	require.Equal(t, permanent.MethodNaiveMC, naive.Method)
	require.InDelta(t, exact.Value, naive.Mean, 0.05*exact.Value)

	imp, err := experiment.Run(permanent.ImportanceSampling, a, samples, repeats, seed)
	require.NoError(t, err)
	require.Equal(t, permanent.MethodImportance, imp.Method)
	require.InDelta(t, exact.Value, imp.Mean, 0.05*exact.Value)
}

// TestRun_VarianceOrdering pins the reason importance sampling exists:
// on a diagonal-dominant matrix its spread across repetitions is
// strictly below naive Monte Carlo's at equal sample counts.
func TestRun_VarianceOrdering(t *testing.T) {
	a, err := permanent.HardMatrix(5)
	require.NoError(t, err)

	const (
		samples = 200
		repeats = 200
		seed    = 7
	)

	naive, err := experiment.Run(permanent.NaiveMC, a, samples, repeats, seed)
	require.NoError(t, err)
	imp, err := experiment.Run(permanent.ImportanceSampling, a, samples, repeats, seed)
	require.NoError(t, err)

	require.Greater(t, naive.StdDev, 0.0)
	require.Less(t, imp.StdDev, naive.StdDev)
}

func TestRun_ZeroVarianceOnDiagonal(t *testing.T) {
	// every importance sample on a diagonal matrix carries the exact
	// permanent, so the empirical spread collapses to zero
	a := [][]float64{
		{2, 0},
		{0, 3},
	}
	sum, err := experiment.Run(permanent.ImportanceSampling, a, 50, 20, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, sum.Mean)
	require.Equal(t, 0.0, sum.StdDev)
}

func TestRun_Reproducible(t *testing.T) {
	a, err := permanent.UniformMatrix(5, permanent.Options{Seed: 2})
	require.NoError(t, err)

	s1, err := experiment.Run(permanent.NaiveMC, a, 100, 10, 42)
	require.NoError(t, err)
	s2, err := experiment.Run(permanent.NaiveMC, a, 100, 10, 42)
	require.NoError(t, err)
	require.Equal(t, s1.Estimates, s2.Estimates)

	// repetitions must not all share one stream
	require.NotEqual(t, s1.Estimates[0], s1.Estimates[1])
}

func TestRun_SingleRepetition(t *testing.T) {
	a, err := permanent.UniformMatrix(3, permanent.Options{Seed: 2})
	require.NoError(t, err)
	sum, err := experiment.Run(permanent.ImportanceSampling, a, 50, 1, 5)
	require.NoError(t, err)
	require.Len(t, sum.Estimates, 1)
	require.Equal(t, sum.Estimates[0], sum.Mean)
	require.Equal(t, 0.0, sum.StdDev)
}

func TestRun_InvalidInput(t *testing.T) {
	a := [][]float64{{1}}

	_, err := experiment.Run(nil, a, 10, 5, 1)
	require.ErrorIs(t, err, experiment.ErrNilEstimator)

	_, err = experiment.Run(permanent.NaiveMC, a, 10, 0, 1)
	require.ErrorIs(t, err, experiment.ErrRepeatCount)

	// estimator validation errors surface through Run
	_, err = experiment.Run(permanent.NaiveMC, a, 0, 5, 1)
	require.ErrorIs(t, err, permanent.ErrSampleCount)

	_, err = experiment.Run(permanent.NaiveMC, nil, 10, 5, 1)
	require.ErrorIs(t, err, permanent.ErrNilMatrix)
}

func TestCompare_WithGroundTruth(t *testing.T) {
	a, err := permanent.HardMatrix(5)
	require.NoError(t, err)

	cmp, err := experiment.Compare(a, 100, 50, 3)
	require.NoError(t, err)
	require.True(t, cmp.HasExact)
	require.Greater(t, cmp.Exact, 0.0)
	require.Equal(t, 5, cmp.Order)
	require.Equal(t, 100, cmp.Samples)
	require.Equal(t, 50, cmp.Repeats)
	require.Len(t, cmp.Naive.Estimates, 50)
	require.Len(t, cmp.Importance.Estimates, 50)
}

func TestCompare_BeyondExactGuard(t *testing.T) {
	// order 11 exceeds the default enumeration guard: the comparison
	// still runs, just without ground truth
	a, err := permanent.UniformMatrix(11, permanent.Options{Seed: 4})
	require.NoError(t, err)

	cmp, err := experiment.Compare(a, 20, 5, 3)
	require.NoError(t, err)
	require.False(t, cmp.HasExact)
	require.Equal(t, 0.0, cmp.Exact)
	require.Len(t, cmp.Naive.Estimates, 5)
}
