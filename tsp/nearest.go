// Package tsp - greedy nearest-neighbor heuristic.
//
// Deterministic O(n²): start at node 0 and repeatedly move to the
// closest not-yet-visited node. Ties on distance resolve to the lowest
// index because only a strictly smaller distance replaces the current
// candidate and indices are scanned in ascending order.
//
// Missing edges cost +Inf and are therefore never selected while a
// finite alternative exists. When every remaining node sits behind an
// infinite edge the walk stops early: the result is an explicitly
// partial Solution (Complete=false, Visited<n) returned together with
// ErrNoHamiltonianCycle, never a silent under-report.
package tsp

import "math"

// NearestNeighbor computes a greedy tour from node 0.
//
// Returns:
//   - a complete Solution when all n nodes were reached. Its Cost
//     includes the wraparound edge and may still be +Inf when the tour
//     cannot close; callers must check feasibility before trusting an
//     infinite cost.
//   - a partial Solution plus ErrNoHamiltonianCycle when the walk got
//     stuck before visiting every node. The partial prefix and its
//     cyclic cost are kept in the Solution for diagnostics.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(o DistanceOracle) (Solution, error) {
	if o == nil {
		return Solution{}, ErrNilOracle
	}
	n := o.Nodes()
	if n < 2 {
		return Solution{}, ErrTooFewNodes
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 1, n)
		current = 0
	)
	tour[0] = 0
	visited[0] = true

	var (
		nearest int
		minDist float64
		cand    float64
		i       int
	)
	for len(tour) < n {
		nearest = -1
		minDist = math.Inf(1)

		// Strict < keeps the first (lowest-index) candidate on ties
		// and never admits a +Inf edge.
		for i = 0; i < n; i++ {
			if visited[i] {
				continue
			}
			cand = o.Distance(current, i)
			if cand < minDist {
				minDist = cand
				nearest = i
			}
		}

		if nearest == -1 {
			// Every remaining node is unreachable from current.
			break
		}

		tour = append(tour, nearest)
		visited[nearest] = true
		current = nearest
	}

	cost, err := TourCost(o, tour)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Tour:      CopyTour(tour),
		Cost:      cost,
		Complete:  len(tour) == n,
		Visited:   len(tour),
		Algorithm: AlgNearestNeighbor,
	}
	if !sol.Complete {
		return sol, ErrNoHamiltonianCycle
	}

	return sol, nil
}
