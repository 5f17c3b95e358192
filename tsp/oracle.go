// Package tsp - the distance oracle boundary.
//
// Solvers read their input graph exclusively through DistanceOracle.
// The oracle models "no edge" as math.Inf(1): infinite cost naturally
// disqualifies any tour using a missing edge, so solvers need no
// separate adjacency test.
package tsp

import "math"

// DistanceOracle answers edge-weight queries over a graph snapshot of
// Nodes() vertices indexed 0..n-1.
//
// Contracts:
//   - Distance(i, i) returns 0.
//   - Distance(i, j) returns the finite non-negative edge weight, or
//     math.Inf(1) when no edge (i, j) exists.
//   - The snapshot must stay stable for the duration of a solve call;
//     that stability is a caller obligation (the core defines no
//     locking of its own).
//
// citygraph.DistMatrix is the canonical implementation; MatrixOracle
// adapts raw [][]float64 literals for tests and ad-hoc callers.
type DistanceOracle interface {
	// Nodes returns the number of nodes n.
	Nodes() int

	// Distance returns the cost of edge (i, j), or math.Inf(1) when
	// the edge does not exist. Arguments are in [0..n-1].
	Distance(i, j int) float64
}

// MatrixOracle adapts a square [][]float64 distance matrix to the
// DistanceOracle interface. Use math.Inf(1) for missing edges.
//
// Out-of-range indices and ragged rows yield NaN, which the strict
// cost/validation checks reject with a sentinel instead of panicking.
type MatrixOracle [][]float64

// Nodes returns the matrix order.
func (m MatrixOracle) Nodes() int { return len(m) }

// Distance returns m[i][j] with defensive bounds checks.
func (m MatrixOracle) Distance(i, j int) float64 {
	if i < 0 || i >= len(m) {
		return math.NaN()
	}
	row := m[i]
	if j < 0 || j >= len(row) {
		return math.NaN()
	}

	return row[j]
}
