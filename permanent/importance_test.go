package permanent_test

import (
	"testing"

	"github.com/dstrand/simlab/permanent"
	"github.com/stretchr/testify/require"
)

func TestImportanceSampling_DiagonalIsExactEverySample(t *testing.T) {
	// On a diagonal matrix the only available nonzero column at row i is
	// column i, so every sample's weight is exactly ∏ a[i][i] = perm(a):
	// the estimator has zero variance.
	a := [][]float64{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	}
	res, err := permanent.ImportanceSampling(a, 25, permanent.Options{Seed: 3})
	require.NoError(t, err)
	require.InDelta(t, 24.0, res.Value, floatTol)
	require.Equal(t, permanent.MethodImportance, res.Method)
}

func TestImportanceSampling_AllOnesIsExactEverySample(t *testing.T) {
	// Row sums over available columns shrink n, n-1, ..., 1, so every
	// sample's weight is exactly n!.
	const n = 5
	ones := make([][]float64, n)
	for i := range ones {
		ones[i] = make([]float64, n)
		for j := range ones[i] {
			ones[i][j] = 1
		}
	}
	res, err := permanent.ImportanceSampling(ones, 10, permanent.Options{Seed: 1})
	require.NoError(t, err)
	require.InDelta(t, 120.0, res.Value, floatTol)
}

func TestImportanceSampling_TwoByTwoWeights(t *testing.T) {
	// For [[2,1],[1,3]]: row 0 sum is 3; choosing column 0 (p=2/3) leaves
	// row 1 sum 3 → weight 9, choosing column 1 (p=1/3) leaves row 1 sum
	// 1 → weight 3. E[w] = (2/3)·9 + (1/3)·3 = 7 = perm(a). Every sample
	// must land on one of the two weights.
	a := [][]float64{
		{2, 1},
		{1, 3},
	}
	res, err := permanent.ImportanceSampling(a, 1, permanent.Options{Seed: 17})
	require.NoError(t, err)
	require.Contains(t, []float64{9, 3}, res.Value)

	// And the sample mean converges to the permanent: with Var(w)=8 the
	// standard error over 20000 samples is ~0.02, so ±0.2 is a 10σ band.
	res, err = permanent.ImportanceSampling(a, 20000, permanent.Options{Seed: 17})
	require.NoError(t, err)
	require.InDelta(t, 7.0, res.Value, 0.2)
}

func TestImportanceSampling_ZeroRow(t *testing.T) {
	// a zero row dead-ends every sample: weight 0 throughout, estimate 0,
	// and no error — matching Exact's value for the same matrix
	a := [][]float64{
		{1, 2, 3},
		{0, 0, 0},
		{4, 5, 6},
	}
	res, err := permanent.ImportanceSampling(a, 100, permanent.Options{Seed: 2})
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Value)
}

func TestImportanceSampling_PartialDeadEnd(t *testing.T) {
	// No row is all-zero, yet half the samples dead-end: row 0 can take
	// column 0 or 1, but row 1 only has mass on column 0. Samples where
	// row 0 grabbed column 0 must yield weight 0 without aborting the run.
	a := [][]float64{
		{1, 1},
		{1, 0},
	}
	res, err := permanent.ImportanceSampling(a, 5000, permanent.Options{Seed: 8})
	require.NoError(t, err)
	// perm(a) = 1·0 + 1·1 = 1; surviving samples carry weight 2
	require.InDelta(t, 1.0, res.Value, 0.1)
}

func TestImportanceSampling_SeedDeterminism(t *testing.T) {
	a, err := permanent.UniformMatrix(6, permanent.Options{Seed: 4})
	require.NoError(t, err)

	r1, err := permanent.ImportanceSampling(a, 300, permanent.Options{Seed: 21})
	require.NoError(t, err)
	r2, err := permanent.ImportanceSampling(a, 300, permanent.Options{Seed: 21})
	require.NoError(t, err)
	require.Equal(t, r1.Value, r2.Value)
}

func TestImportanceSampling_NonNegative(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a, err := permanent.UniformMatrix(4, permanent.Options{Seed: seed})
		require.NoError(t, err)
		res, err := permanent.ImportanceSampling(a, 50, permanent.Options{Seed: seed})
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Value, 0.0)
	}
}

func TestImportanceSampling_InvalidInput(t *testing.T) {
	_, err := permanent.ImportanceSampling([][]float64{{1}}, 0, permanent.Options{})
	require.ErrorIs(t, err, permanent.ErrSampleCount)

	_, err = permanent.ImportanceSampling(nil, 10, permanent.Options{})
	require.ErrorIs(t, err, permanent.ErrNilMatrix)

	_, err = permanent.ImportanceSampling([][]float64{{1, 2}, {-1, 3}}, 10, permanent.Options{})
	require.ErrorIs(t, err, permanent.ErrNegativeEntry)
}
