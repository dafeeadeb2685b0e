// SPDX-License-Identifier: MIT

package permanent

// Method identifies which algorithm produced a Result.
type Method int

const (
	// MethodExact - full permutation enumeration, no sampling involved.
	MethodExact Method = iota

	// MethodNaiveMC - uniform random permutations, scaled by n!.
	MethodNaiveMC

	// MethodImportance - sequential proportional sampling with
	// row-sum importance weights.
	MethodImportance
)

// String returns a stable human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodNaiveMC:
		return "naive-mc"
	case MethodImportance:
		return "importance"
	default:
		return "unknown"
	}
}

// Result holds the outcome of one permanent computation or estimate,
// with enough provenance for a reporting layer to label it.
type Result struct {
	// Method is the algorithm that produced Value.
	Method Method

	// Order is the matrix order n.
	Order int

	// Samples is the Monte Carlo sample count (0 for MethodExact).
	Samples int

	// Seed is the RNG seed actually used after the seed==0 default
	// policy was applied (0 for MethodExact).
	Seed int64

	// Value is the computed permanent or its estimate.
	Value float64
}
