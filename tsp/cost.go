// Package tsp - cost utilities shared by all solvers.
//
// TourCost is the single source of truth for the cyclic cost
// convention: the wraparound edge from the last tour node back to the
// first is ALWAYS included, for complete and partial tours alike. Every
// solver reports costs through this convention, so a Solution.Cost can
// be re-verified by an independent TourCost call.
//
// Numeric policy (mirrors the package-wide rules):
//   - NaN anywhere          → ErrInvalidWeight (ill-posed oracle),
//   - negative distance     → ErrNegativeWeight,
//   - +Inf                  → legal: the sum becomes +Inf, which is how
//     a tour over a missing edge reports itself.
//   - finite results are stabilized to 1e-9 to avoid FP drift.
//
// Complexity: O(len(tour)) time, O(1) space.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums Distance over all consecutive tour pairs plus the
// wraparound edge tour[len-1] → tour[0].
//
// Contracts:
//   - o non-nil, len(tour) ≥ 1, every index within [0..o.Nodes()-1].
//   - tour need not be a permutation: partial prefixes are priced by
//     the same cyclic rule (the closing edge may then be +Inf).
func TourCost(o DistanceOracle, tour []int) (float64, error) {
	if o == nil {
		return 0, ErrNilOracle
	}
	if len(tour) == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		n   = o.Nodes()
		sum float64
		i   int
		u   int
		v   int
		w   float64
	)
	if n <= 0 {
		return 0, ErrDimensionMismatch
	}

	for i = 0; i < len(tour); i++ {
		u = tour[i]
		v = tour[(i+1)%len(tour)] // wraparound on the last pair

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}

		w = o.Distance(u, v)
		if math.IsNaN(w) {
			return 0, ErrInvalidWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision; ±Inf passes
// through unchanged (math.Round(±Inf) is ±Inf).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
