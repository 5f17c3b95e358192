// Package tsp - tour utilities operating purely on index sequences.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n, i.e. a complete tour in the open representation.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice, so a
// Solution never aliases solver-internal storage.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// identityPerm fills p with 0..len(p)-1.
func identityPerm(p []int) {
	for i := range p {
		p[i] = i
	}
}
