// Package tsp provides the tour-solving core: three interchangeable
// algorithms computing a closed tour that visits every node of a
// weighted graph exactly once.
//
//   - NearestNeighbor — deterministic greedy heuristic.
//     Complexity: O(n²). May terminate early on sparse graphs and then
//     reports a partial tour together with ErrNoHamiltonianCycle.
//   - Genetic — population-based metaheuristic over tour permutations
//     (tournament selection, ordered crossover, swap mutation, elitism).
//     Complexity: O(generations·population·n). Seedable and fully
//     reproducible; never optimal by guarantee.
//   - HeldKarp — exact bitmask dynamic program.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory; refuses n above
//     ExactNodeLimit with ErrExactLimitExceeded.
//
// Solve is the canonical entry point: it validates the graph snapshot,
// routes to exactly one solver, and returns a Solution or a sentinel
// error. Input graphs are read through the DistanceOracle interface,
// where math.Inf(1) encodes “no edge”.
//
// All solvers report the cyclic cost convention: the wraparound edge
// from the last tour node back to the first is always included.
package tsp
