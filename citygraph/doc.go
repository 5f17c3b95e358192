// Package citygraph provides the weighted city graph the tour solvers
// consume.
//
// It separates two concerns:
//
//   - Graph — the mutable builder owned by the authoring layer. Cities
//     are added with a name and planar coordinates; edges are
//     undirected, weighted, loop-free and unique per pair.
//   - DistMatrix — an immutable solve-time snapshot produced by
//     Graph.Snapshot(). It stores distances row-major in a flat slice,
//     with 0 on the diagonal and math.Inf(1) for missing edges, and
//     satisfies the solver core's DistanceOracle contract.
//
// The split enforces the solve-time lifecycle: a solver call reads a
// frozen snapshot and can never observe authoring mutations. Building
// a fresh snapshot after each edit is O(n²) and intended.
//
// Errors are package-level sentinels checked via errors.Is; no function
// panics on user input.
package citygraph
