// Package citygraph - mutable builder for the weighted city graph.
//
// This file declares City, Graph, the sentinel error set, and the full
// authoring surface (AddCity / Connect / EuclideanConnect / Disconnect /
// Weight / City / Cities / EdgeCount).
//
// Design:
//   - Undirected simple graph: no loops, no parallel edges.
//   - Edge weights must be finite and non-negative; +Inf is reserved
//     for "no edge" in snapshots and is not a storable weight.
//   - Deterministic, side-effect free queries; only sentinel errors.
//
// Concurrency: Graph is not safe for concurrent mutation. The solver
// core never touches a Graph - it reads a DistMatrix snapshot.
package citygraph

import (
	"errors"
	"math"
)

// Sentinel errors for graph authoring operations.
var (
	// ErrEmptyCityName indicates an AddCity call with an empty name.
	ErrEmptyCityName = errors.New("citygraph: city name is empty")

	// ErrDuplicateCityName indicates an AddCity call reusing a name.
	ErrDuplicateCityName = errors.New("citygraph: city name already exists")

	// ErrCityNotFound indicates a city index outside [0..Cities()-1].
	ErrCityNotFound = errors.New("citygraph: city not found")

	// ErrSelfLoop indicates an attempt to connect a city to itself.
	ErrSelfLoop = errors.New("citygraph: self-loop not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("citygraph: edge weight must be finite and non-negative")

	// ErrEdgeNotFound indicates a Disconnect on a missing edge.
	ErrEdgeNotFound = errors.New("citygraph: edge not found")

	// ErrBadCoordinate indicates a NaN or infinite city coordinate.
	ErrBadCoordinate = errors.New("citygraph: city coordinate must be finite")
)

// City is a node of the graph: a display name plus planar coordinates.
// Coordinates exist for Euclidean weighting and for the rendering layer;
// the solvers only ever see edge weights.
type City struct {
	// Name uniquely identifies the city within its Graph.
	Name string

	// X, Y are planar coordinates in arbitrary units.
	X, Y float64
}

// edgeKey addresses an undirected edge by its normalized index pair.
type edgeKey struct{ lo, hi int }

// keyOf normalizes (i,j) into the canonical lo<hi form.
func keyOf(i, j int) edgeKey {
	if i > j {
		i, j = j, i
	}

	return edgeKey{lo: i, hi: j}
}

// Graph is the mutable city-graph builder.
//
// Cities are addressed by dense indices 0..Cities()-1 in insertion
// order; indices are stable because cities are never removed. The node
// table grows dynamically - there is no compile-time capacity.
type Graph struct {
	cities []City
	byName map[string]int
	edges  map[edgeKey]float64
}

// New returns an empty Graph ready for authoring.
func New() *Graph {
	return &Graph{
		byName: make(map[string]int),
		edges:  make(map[edgeKey]float64),
	}
}

// AddCity appends a city and returns its index.
//
// Contracts:
//   - name must be non-empty and unique within the graph.
//   - x, y must be finite (NaN/±Inf are rejected).
//
// Complexity: O(1) amortized.
func (g *Graph) AddCity(name string, x, y float64) (int, error) {
	if name == "" {
		return 0, ErrEmptyCityName
	}
	if _, dup := g.byName[name]; dup {
		return 0, ErrDuplicateCityName
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrBadCoordinate
	}

	idx := len(g.cities)
	g.cities = append(g.cities, City{Name: name, X: x, Y: y})
	g.byName[name] = idx

	return idx, nil
}

// Connect sets the weight of the undirected edge (i, j).
// Reconnecting an existing pair overwrites its weight.
//
// Contracts:
//   - i, j ∈ [0..Cities()-1], i ≠ j.
//   - weight is finite and ≥ 0 (+Inf means "no edge" and is not storable).
//
// Complexity: O(1).
func (g *Graph) Connect(i, j int, weight float64) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return ErrBadWeight
	}
	g.edges[keyOf(i, j)] = weight

	return nil
}

// EuclideanConnect connects (i, j) with the planar distance between the
// two cities, the way the interactive authoring layer weights edges
// drawn between placed cities.
//
// Complexity: O(1).
func (g *Graph) EuclideanConnect(i, j int) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}

	var (
		a  = g.cities[i]
		b  = g.cities[j]
		dx = a.X - b.X
		dy = a.Y - b.Y
	)
	g.edges[keyOf(i, j)] = math.Sqrt(dx*dx + dy*dy)

	return nil
}

// Disconnect removes the undirected edge (i, j).
// Returns ErrEdgeNotFound if the pair is not connected.
//
// Complexity: O(1).
func (g *Graph) Disconnect(i, j int) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}

	k := keyOf(i, j)
	if _, ok := g.edges[k]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, k)

	return nil
}

// Weight reports the stored weight of edge (i, j) and whether the edge
// exists. Out-of-range or loop pairs report (0, false).
//
// Complexity: O(1).
func (g *Graph) Weight(i, j int) (float64, bool) {
	if g.checkPair(i, j) != nil {
		return 0, false
	}
	w, ok := g.edges[keyOf(i, j)]

	return w, ok
}

// City returns the city stored at index i.
func (g *Graph) City(i int) (City, error) {
	if i < 0 || i >= len(g.cities) {
		return City{}, ErrCityNotFound
	}

	return g.cities[i], nil
}

// Cities returns the number of cities.
func (g *Graph) Cities() int { return len(g.cities) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// checkPair validates that (i, j) addresses two distinct existing cities.
func (g *Graph) checkPair(i, j int) error {
	n := len(g.cities)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrCityNotFound
	}
	if i == j {
		return ErrSelfLoop
	}

	return nil
}
