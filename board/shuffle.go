package board

import (
	"math/rand"
	"time"
)

// Shuffle returns a uniformly random permutation of 0..n-1 that is not
// the identity, resampling until a scrambled arrangement comes up.
// For n ≤ 1 no non-trivial permutation exists, so the identity is
// returned as-is ([] for n=0, [0] for n=1).
//
// The shuffle is a full Fisher–Yates pass over the index range; the
// identity retry loop terminates in O(1) expected draws since a uniform
// draw hits the identity with probability 1/n!.
//
// rng may be nil, in which case a time-seeded source is used.
// Complexity: O(n) expected time, O(n) memory.
func Shuffle(n int, rng *rand.Rand) []int {
	if n < 0 {
		n = 0
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if n <= 1 {
		return perm
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for isIdentity(perm) {
		rng.Shuffle(n, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
	}

	return perm
}

// isIdentity reports whether perm[i] == i for every i.
func isIdentity(perm []int) bool {
	for i, p := range perm {
		if p != i {
			return false
		}
	}

	return true
}
