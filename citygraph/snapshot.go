// Package citygraph - immutable solve-time distance snapshot.
//
// DistMatrix freezes a Graph into a row-major flat []float64 so the
// solver core reads distances with zero map lookups and cannot observe
// later authoring mutations.
//
// Numeric policy:
//   - diagonal entries are 0,
//   - missing edges are math.Inf(1),
//   - stored weights are finite and ≥ 0 (enforced at authoring time).
//
// Complexity: Snapshot is O(n²) time and space; Distance is O(1).
package citygraph

import "math"

// DistMatrix is an immutable n×n symmetric distance table.
//
// It satisfies the solver core's DistanceOracle contract:
// Nodes() reports n and Distance(i, j) returns the edge weight or
// math.Inf(1) when no edge exists.
type DistMatrix struct {
	n int
	w []float64 // row-major, length n*n
}

// Snapshot freezes the current graph into a DistMatrix.
// The snapshot is fully detached: subsequent Graph mutations do not
// affect it, and a new snapshot must be taken after every edit burst.
//
// Complexity: O(n²) init + O(E) edge writes.
func (g *Graph) Snapshot() *DistMatrix {
	var (
		n   = len(g.cities)
		w   = make([]float64, n*n)
		inf = math.Inf(1)
		i   int
	)

	// Stage 1: fill with +Inf, then zero the diagonal.
	for i = range w {
		w[i] = inf
	}
	for i = 0; i < n; i++ {
		w[i*n+i] = 0
	}

	// Stage 2: write both triangles from the undirected edge set.
	var (
		k  edgeKey
		wt float64
	)
	for k, wt = range g.edges {
		w[k.lo*n+k.hi] = wt
		w[k.hi*n+k.lo] = wt
	}

	return &DistMatrix{n: n, w: w}
}

// Nodes returns the number of cities captured by the snapshot.
func (m *DistMatrix) Nodes() int { return m.n }

// Distance returns the weight of edge (i, j), 0 on the diagonal, or
// math.Inf(1) when the cities are not connected.
//
// Contract: i, j ∈ [0..Nodes()-1]. Out-of-range indices return NaN so
// that the solver core's strict cost checks surface the misuse instead
// of silently reading a wrong cell.
func (m *DistMatrix) Distance(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return math.NaN()
	}

	return m.w[i*m.n+j]
}

// EdgeCount returns the number of distinct finite off-diagonal pairs.
//
// Complexity: O(n²).
func (m *DistMatrix) EdgeCount() int {
	var (
		count int
		i, j  int
	)
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if !math.IsInf(m.w[i*m.n+j], 0) {
				count++
			}
		}
	}

	return count
}

// Clone returns an independent copy of the snapshot.
func (m *DistMatrix) Clone() *DistMatrix {
	cw := make([]float64, len(m.w))
	copy(cw, m.w)

	return &DistMatrix{n: m.n, w: cw}
}
