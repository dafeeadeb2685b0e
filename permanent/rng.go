// SPDX-License-Identifier: MIT

// Package permanent - deterministic RNG policy.
//
// All sampling in this package flows through rngFromSeed: no time-based
// sources, no process-global state. Same seed ⇒ identical estimates
// across platforms. math/rand.Rand is not goroutine-safe; each estimator
// call owns its Rand for the call's duration.

package permanent

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep zero-value Options reproducible.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the seed==0 policy and returns the seed that will
// actually drive the stream (also recorded in Result.Seed).
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// rngFromSeed returns a deterministic *rand.Rand under the seed==0 policy.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}
