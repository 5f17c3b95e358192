// Package tsp - unified dispatcher for the tour solvers.
//
// Solve is the canonical entry point: it validates the oracle and the
// options, routes to exactly one solver, and returns a uniform
// Solution. Solvers never call each other; the only substitution is
// the dispatcher-applied, opt-in nearest-neighbor fallback for exact
// requests above ExactNodeLimit.
//
// Design principles:
//   - Deterministic: seed routing to the genetic engine; no time-based
//     randomness anywhere.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where
//     a sentinel suffices.
//   - Single synchronous run-to-completion call; input stability for
//     the call's duration is a caller obligation.
package tsp

// Solve validates the graph snapshot and runs the selected algorithm.
//
// Dispatcher contract (checked before any solver runs):
//   - o non-nil with n ≥ 2 nodes, else ErrNilOracle / ErrTooFewNodes;
//   - at least one edge anywhere, else ErrNoEdges;
//   - no NaN or negative distances, zero diagonal;
//   - a known Options.Algo with in-range genetic parameters.
//
// Routing:
//   - AlgNearestNeighbor → NearestNeighbor;
//   - AlgGenetic         → Genetic (stream built from Options.Seed);
//   - AlgExactHeldKarp   → HeldKarp; above ExactNodeLimit the call
//     returns ErrExactLimitExceeded unless Options.AllowExactFallback
//     is set, in which case NearestNeighbor runs and the substitution
//     is visible in Solution.Algorithm.
//
// Complexity: validation O(n²) + the chosen algorithm's cost.
func Solve(o DistanceOracle, opts Options) (Solution, error) {
	n, err := validateAll(o, opts)
	if err != nil {
		return Solution{}, err
	}

	switch opts.Algo {
	case AlgNearestNeighbor:
		return NearestNeighbor(o)

	case AlgGenetic:
		return Genetic(o, opts)

	case AlgExactHeldKarp:
		if n > ExactNodeLimit {
			if !opts.AllowExactFallback {
				return Solution{}, ErrExactLimitExceeded
			}
			// Explicit opt-in degradation; Solution.Algorithm reports
			// AlgNearestNeighbor so the swap is always observable.
			return NearestNeighbor(o)
		}

		return HeldKarp(o)

	default:
		// validateAll already rejects unknown selectors; kept for
		// exhaustiveness.
		return Solution{}, ErrUnsupportedAlgorithm
	}
}
