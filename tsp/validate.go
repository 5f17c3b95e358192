// Package tsp - validation shared by the dispatcher.
//
// This file verifies everything the dispatcher must reject before any
// solver runs:
//  1. Options consistency (known algorithm, genetic parameter bounds).
//  2. Oracle shape and numeric policy (n ≥ 2, no NaN, no negatives,
//     zero diagonal).
//  3. The at-least-one-edge configuration rule.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go.
//   - O(n²) worst case (full oracle scan); no hidden allocations.
package tsp

import "math"

// diagTol is the structural tolerance for the zero-diagonal check.
const diagTol = 1e-12

// validateAll verifies Options plus the distance oracle. It returns n
// (the node count) on success.
//
// Contract: the oracle scan enforces, for every pair (i, j):
//   - no NaN (ErrInvalidWeight), no negative weight (ErrNegativeWeight),
//   - |Distance(i,i)| ≤ 1e-12 and finite (ErrInvalidWeight),
//   - at least one finite off-diagonal entry overall (else ErrNoEdges).
//
// Complexity: O(n²) time, O(1) space.
func validateAll(o DistanceOracle, opts Options) (int, error) {
	// Stage 1: options-only sanity.
	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	// Stage 2: oracle shape.
	if o == nil {
		return 0, ErrNilOracle
	}
	n := o.Nodes()
	if n < 0 {
		return 0, ErrDimensionMismatch
	}
	if n < 2 {
		return 0, ErrTooFewNodes
	}

	// Stage 3: full numeric scan + edge presence.
	var (
		i, j    int
		w       float64
		abs     float64
		hasEdge bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = o.Distance(i, j)
			if math.IsNaN(w) {
				return 0, ErrInvalidWeight
			}
			if w < 0 {
				return 0, ErrNegativeWeight
			}
			if i == j {
				if math.IsInf(w, 0) {
					return 0, ErrInvalidWeight
				}
				abs = w
				if abs < 0 {
					abs = -abs
				}
				if abs > diagTol {
					return 0, ErrInvalidWeight
				}

				continue
			}
			if !math.IsInf(w, 0) {
				hasEdge = true
			}
		}
	}
	if !hasEdge {
		return 0, ErrNoEdges
	}

	return n, nil
}

// validateOptionsStandalone checks internal consistency of Options
// without touching the oracle.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	switch opts.Algo {
	case AlgNearestNeighbor, AlgGenetic, AlgExactHeldKarp:
		// known selector
	default:
		return ErrUnsupportedAlgorithm
	}

	// Genetic parameters matter only when the genetic engine runs; the
	// zero Options value stays usable for the other solvers.
	if opts.Algo == AlgGenetic {
		if opts.Population < 2 {
			return ErrBadOptions
		}
		if opts.Generations <= 0 {
			return ErrBadOptions
		}
		if opts.TournamentSize <= 0 {
			return ErrBadOptions
		}
		if opts.MutationRate < 0 || opts.MutationRate > 1 {
			return ErrBadOptions
		}
	}

	return nil
}
