// Package tsp - exact Held–Karp dynamic programming solver.
package tsp

import "math"

// HeldKarp solves the tour problem exactly via the Held–Karp bitmask
// dynamic program.
//
// State: dp[mask][last] is the minimum cost of a path that starts at
// node 0, visits exactly the node set mask (mask must contain bit 0 and
// bit last), and ends at last. Base case dp[{0}][0] = 0; every other
// state starts at +Inf. Transitions relax dp[mask∪{next}][next] over
// all finite edges (last, next) with next ∉ mask, recording last as the
// predecessor. The answer closes the cycle:
// min over last of dp[full][last] + Distance(last, 0).
//
// Returns:
//   - an optimal complete Solution (tour starts at node 0, forward
//     order reconstructed from predecessor links);
//   - ErrNoHamiltonianCycle when every closing state is infinite - a
//     sparse graph with no Hamiltonian cycle, distinct by construction
//     from any feasible tour with a large but finite cost;
//   - ErrExactLimitExceeded when n > ExactNodeLimit. The substitution
//     of the heuristic is NOT performed here; the dispatcher applies it
//     only under the explicit Options.AllowExactFallback opt-in.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space. At n = ExactNodeLimit the
// tables hold 2·20·2²⁰ entries (≈250 MB combined); the ceiling exists
// to keep that a bounded, testable envelope.
func HeldKarp(o DistanceOracle) (Solution, error) {
	if o == nil {
		return Solution{}, ErrNilOracle
	}
	n := o.Nodes()
	if n < 2 {
		return Solution{}, ErrTooFewNodes
	}
	if n > ExactNodeLimit {
		return Solution{}, ErrExactLimitExceeded
	}

	var (
		size = 1 << uint(n)
		full = size - 1
		inf  = math.Inf(1)
	)

	// Flat dp and predecessor tables indexed mask*n+last.
	dp := make([]float64, size*n)
	parent := make([]int32, size*n)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	dp[(1<<0)*n+0] = 0 // base: at node 0 having visited {0}

	// Forward relaxation over all masks containing node 0.
	var (
		mask, last, next int
		base             float64
		cand             float64
		d                float64
		nextMask         int
	)
	for mask = 1; mask < size; mask++ {
		if mask&1 == 0 {
			continue // node 0 must be on every path
		}
		for last = 0; last < n; last++ {
			if mask&(1<<uint(last)) == 0 {
				continue
			}
			base = dp[mask*n+last]
			if math.IsInf(base, 1) {
				continue // unreachable state
			}
			for next = 0; next < n; next++ {
				if mask&(1<<uint(next)) != 0 {
					continue
				}
				d = o.Distance(last, next)
				if math.IsInf(d, 1) {
					continue // no edge last→next
				}
				nextMask = mask | 1<<uint(next)
				cand = base + d
				if cand < dp[nextMask*n+next] {
					dp[nextMask*n+next] = cand
					parent[nextMask*n+next] = int32(last)
				}
			}
		}
	}

	// Close the cycle back to node 0.
	var (
		bestCost = inf
		bestLast = -1
		total    float64
	)
	for last = 1; last < n; last++ {
		d = o.Distance(last, 0)
		if math.IsInf(d, 1) {
			continue
		}
		total = dp[full*n+last] + d
		if total < bestCost {
			bestCost = total
			bestLast = last
		}
	}
	if bestLast < 0 || math.IsInf(bestCost, 1) {
		return Solution{}, ErrNoHamiltonianCycle
	}

	// Reconstruct the visiting order backward from bestLast to node 0,
	// then report it forward starting at 0.
	tour := make([]int, n)
	mask = full
	last = bestLast
	for i := n - 1; i >= 1; i-- {
		tour[i] = last
		p := int(parent[mask*n+last])
		mask ^= 1 << uint(last)
		last = p
	}
	tour[0] = 0

	return Solution{
		Tour:      tour,
		Cost:      round1e9(bestCost),
		Complete:  true,
		Visited:   n,
		Algorithm: AlgExactHeldKarp,
	}, nil
}
