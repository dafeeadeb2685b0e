// SPDX-License-Identifier: MIT

package permanent

// DefaultMaxExactN bounds Exact's permutation enumeration. 10! ≈ 3.6M
// permutations is well under a second; 13! is already minutes. Callers
// who accept the wait can raise Options.MaxExactN explicitly.
const DefaultMaxExactN = 10

// Options configures the estimators. The zero value is valid and means
// "all defaults": deterministic default seed, DefaultMaxExactN guard.
type Options struct {
	// Seed drives all randomness. 0 selects the fixed internal default
	// stream, so the zero value is still fully deterministic.
	Seed int64

	// MaxExactN is the largest matrix order Exact will enumerate before
	// returning ErrTooLarge. 0 means DefaultMaxExactN; negative values
	// are rejected with ErrBadOptions.
	MaxExactN int
}

// DefaultOptions returns the canonical defaults: deterministic default
// seed, MaxExactN = DefaultMaxExactN.
func DefaultOptions() Options {
	return Options{
		Seed:      0,
		MaxExactN: DefaultMaxExactN,
	}
}

// exactLimit resolves the effective enumeration guard from opts.
//
// Complexity: O(1).
func exactLimit(opts Options) (int, error) {
	if opts.MaxExactN < 0 {
		return 0, ErrBadOptions
	}
	if opts.MaxExactN == 0 {
		return DefaultMaxExactN, nil
	}

	return opts.MaxExactN, nil
}
