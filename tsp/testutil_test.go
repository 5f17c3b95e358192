// Package tsp_test provides lightweight helpers shared across the
// *_test.go files in this package. The helpers are intentionally
// minimal and avoid duplicating functionality that already lives in
// focused test files.
package tsp_test

import (
	"math"
	"math/rand"

	"github.com/planvo/tourkit/tsp"
)

const (
	// seedDet is the deterministic seed used across randomized tests.
	seedDet = int64(42)

	// epsCost is the tolerance for cost comparisons; matches the
	// production 1e-9 stabilization.
	epsCost = 1e-9
)

// inf is the "no edge" sentinel shared by all fixtures.
var inf = math.Inf(1)

// squareCorners is the canonical 10×10 square fixture: four fully
// connected corner cities with Euclidean weights. The optimal tour is
// the perimeter, cost exactly 40.
func squareCorners() tsp.MatrixOracle {
	d := 10.0 * math.Sqrt2 // diagonal of the square
	return tsp.MatrixOracle{
		{0, 10, d, 10},
		{10, 0, 10, d},
		{d, 10, 0, 10},
		{10, d, 10, 0},
	}
}

// twoCities is the minimal fixture: A—B with a single edge of weight 5.
// The only tour is out-and-back, cost 10.
func twoCities() tsp.MatrixOracle {
	return tsp.MatrixOracle{
		{0, 5},
		{5, 0},
	}
}

// ringOracle builds the fully connected n-cycle metric
// dist(i,j) = min(|i-j|, n-|i-j|); the optimal tour cost is n.
func ringOracle(n int) tsp.MatrixOracle {
	m := make(tsp.MatrixOracle, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			d := math.Abs(float64(i - j))
			m[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return m
}

// randomCompleteOracle builds a seeded symmetric complete matrix with
// weights in [1, 100).
func randomCompleteOracle(n int, seed int64) tsp.MatrixOracle {
	rng := rand.New(rand.NewSource(seed))
	m := make(tsp.MatrixOracle, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 1 + 99*rng.Float64()
			m[i][j] = w
			m[j][i] = w
		}
	}

	return m
}

// starOracle connects every node to node 0 only: edges exist, but no
// Hamiltonian cycle does for n ≥ 3.
func starOracle(n int) tsp.MatrixOracle {
	m := make(tsp.MatrixOracle, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			switch {
			case i == j:
				m[i][j] = 0
			case i == 0 || j == 0:
				m[i][j] = 1
			default:
				m[i][j] = inf
			}
		}
	}

	return m
}

// isCyclicCornerOrder reports whether a 4-node tour visits the square
// corners in perimeter order (every consecutive pair, wraparound
// included, differs by ±1 mod 4).
func isCyclicCornerOrder(tour []int) bool {
	if len(tour) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		u := tour[i]
		v := tour[(i+1)%4]
		diff := (v - u + 4) % 4
		if diff != 1 && diff != 3 {
			return false
		}
	}

	return true
}
