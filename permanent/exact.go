// SPDX-License-Identifier: MIT

package permanent

// Exact computes the permanent of a by full permutation enumeration:
//
//	perm(a) = Σ_σ ∏_i a[i][σ(i)]
//
// Deterministic and exact up to floating-point rounding; two calls on
// the same matrix return identical values. For a 2×2 matrix this is the
// closed form a[0][0]·a[1][1] + a[0][1]·a[1][0].
//
// The n! terms are the method's defining wall: Exact refuses orders
// above opts.MaxExactN with ErrTooLarge rather than hang. That guard is
// resource protection only — raise it if you can afford the wait.
//
// Errors: validateMatrix sentinels, ErrBadOptions, ErrTooLarge.
//
// Complexity: O(n!·n) time, O(n) space.
func Exact(a [][]float64, opts Options) (Result, error) {
	limit, err := exactLimit(opts)
	if err != nil {
		return Result{}, err
	}
	n, err := validateMatrix(a)
	if err != nil {
		return Result{}, err
	}
	if n > limit {
		return Result{}, ErrTooLarge
	}

	it, err := EnumeratePermutations(n)
	if err != nil {
		return Result{}, err
	}

	var (
		sum  float64
		prod float64
		i    int
	)
	for sigma, ok := it.Next(); ok; sigma, ok = it.Next() {
		prod = 1.0
		for i = 0; i < n; i++ {
			prod *= a[i][sigma[i]]
			if prod == 0 {
				break // a zero factor kills the whole term
			}
		}
		sum += prod
	}

	return Result{Method: MethodExact, Order: n, Value: sum}, nil
}
