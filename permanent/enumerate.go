// SPDX-License-Identifier: MIT

package permanent

// Permutations lazily enumerates every permutation of {0..n-1} exactly
// once, in Heap's-algorithm order. The order is deterministic but not
// part of the contract; only completeness and uniqueness are.
//
// The iterator is single-pass and non-restartable: create a new one to
// enumerate again. The slice returned by Next is reused between calls —
// copy it if you retain it.
type Permutations struct {
	perm    []int
	count   []int // per-position swap counters of Heap's algorithm
	pos     int
	started bool
	done    bool
}

// EnumeratePermutations returns a fresh iterator over all n! permutations
// of {0..n-1}. n < 1 yields ErrBadOrder; practical use is bounded by
// factorial growth (n ≲ 10), which callers must enforce themselves.
//
// Complexity: O(n) setup; each Next is amortized O(1) swaps.
func EnumeratePermutations(n int) (*Permutations, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	p := &Permutations{
		perm:  make([]int, n),
		count: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.perm[i] = i
	}

	return p, nil
}

// Next returns the next permutation and true, or (nil, false) once all
// n! permutations have been produced. The returned slice aliases
// internal state; it is valid only until the following Next call.
func (p *Permutations) Next() ([]int, bool) {
	if p.done {
		return nil, false
	}
	if !p.started {
		// The identity permutation is the first element of the sequence.
		p.started = true
		return p.perm, true
	}

	n := len(p.perm)
	for p.pos < n {
		if p.count[p.pos] < p.pos {
			// Heap's rule: even position swaps with 0, odd with count.
			if p.pos%2 == 0 {
				p.perm[0], p.perm[p.pos] = p.perm[p.pos], p.perm[0]
			} else {
				p.perm[p.count[p.pos]], p.perm[p.pos] = p.perm[p.pos], p.perm[p.count[p.pos]]
			}
			p.count[p.pos]++
			p.pos = 0

			return p.perm, true
		}
		p.count[p.pos] = 0
		p.pos++
	}
	p.done = true

	return nil, false
}

// factorial returns n! as a float64. Exact for n <= 20 and finite up to
// n = 170; estimator callers never get near either bound in practice.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}
