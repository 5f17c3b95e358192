// Package tsp - shared types and the sentinel error set.
//
// This file defines ONLY the public contract surface: the Algorithm
// selector, Options (with defaults and runtime bounds), Solution, and
// the package-level sentinel errors. All solvers MUST return these
// sentinels and tests MUST check them via errors.Is. No function in
// this package panics on user input.
package tsp

import "errors"

// ExactNodeLimit is the hard node-count ceiling of the exact solver.
// The Held–Karp state space is 2^n·n; at n=21 the dp and predecessor
// tables alone exceed half a gigabyte, so the ceiling is a resource
// contract, not a tuning knob.
const ExactNodeLimit = 20

// Sentinel errors. Order of documentation mirrors detection priority:
// usage/shape errors, then configuration errors rejected by the
// dispatcher, then solver-level outcomes.
var (
	// ErrNilOracle indicates a nil DistanceOracle was passed in.
	ErrNilOracle = errors.New("tsp: distance oracle is nil")

	// ErrDimensionMismatch indicates an ill-shaped input: a tour index
	// outside [0..n-1], a tour of impossible length, or an oracle
	// reporting a negative node count.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrInvalidWeight indicates the oracle produced NaN where a
	// distance (finite or +Inf) was required.
	ErrInvalidWeight = errors.New("tsp: invalid distance value")

	// ErrNegativeWeight indicates a negative distance; tour costs are
	// defined over non-negative weights only.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrBadOptions indicates out-of-range genetic parameters
	// (non-positive population/generations/tournament, or a mutation
	// rate outside [0,1]).
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrTooFewNodes is the dispatcher's configuration error for
	// graphs with fewer than two nodes; no solver runs.
	ErrTooFewNodes = errors.New("tsp: graph needs at least two nodes")

	// ErrNoEdges is the dispatcher's configuration error for graphs
	// with no edges at all; no solver runs.
	ErrNoEdges = errors.New("tsp: graph has no edges")

	// ErrNoHamiltonianCycle indicates the edges present admit no closed
	// tour visiting every node exactly once. The exact solver detects
	// it via all-infinite closing states; the nearest-neighbor solver
	// via early termination (and then still returns the partial prefix
	// in the Solution alongside this error); the genetic solver via an
	// infinite best-ever cost.
	ErrNoHamiltonianCycle = errors.New("tsp: no hamiltonian cycle exists")

	// ErrExactLimitExceeded indicates a Held–Karp request above
	// ExactNodeLimit without Options.AllowExactFallback. The original
	// design substituted the heuristic silently; here the substitution
	// is opt-in and always observable.
	ErrExactLimitExceeded = errors.New("tsp: node count exceeds exact solver limit")
)

// Algorithm selects one of the tour solvers.
type Algorithm int

const (
	// AlgNearestNeighbor - deterministic greedy heuristic, O(n²).
	AlgNearestNeighbor Algorithm = iota

	// AlgGenetic - population-based metaheuristic, seedable.
	AlgGenetic

	// AlgExactHeldKarp - optimal bitmask DP, n ≤ ExactNodeLimit.
	AlgExactHeldKarp
)

// String returns a stable human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgNearestNeighbor:
		return "nearest-neighbor"
	case AlgGenetic:
		return "genetic"
	case AlgExactHeldKarp:
		return "exact-held-karp"
	default:
		return "unknown"
	}
}

// Options configures a Solve call.
//
// The zero value is NOT valid for the genetic solver; use
// DefaultOptions and override fields as needed.
type Options struct {
	// Algo selects the solver to run.
	Algo Algorithm

	// Seed feeds the genetic solver's random stream. Policy follows
	// the package RNG file: seed==0 maps to a fixed default seed, so
	// every run is reproducible and never wall-clock dependent.
	Seed int64

	// AllowExactFallback permits the dispatcher to substitute the
	// nearest-neighbor heuristic when Algo==AlgExactHeldKarp and the
	// graph exceeds ExactNodeLimit. The substitution is recorded in
	// Solution.Algorithm. Without this flag the dispatcher returns
	// ErrExactLimitExceeded instead.
	AllowExactFallback bool

	// Genetic engine parameters. Defaults reproduce the canonical
	// configuration: 100 individuals, 500 generations, mutation
	// probability 0.01 per individual, tournament size 5.
	Population     int
	Generations    int
	MutationRate   float64
	TournamentSize int
}

// DefaultOptions returns the canonical configuration: nearest-neighbor
// dispatch, deterministic seed policy, and the stock genetic parameters.
func DefaultOptions() Options {
	return Options{
		Algo:           AlgNearestNeighbor,
		Seed:           0,
		Population:     100,
		Generations:    500,
		MutationRate:   0.01,
		TournamentSize: 5,
	}
}

// Solution is the uniform result type produced by every solver.
// It is created fresh per solve call and never mutated afterward.
type Solution struct {
	// Tour is an owned sequence of node indices. For a complete tour it
	// is a permutation of 0..n-1; the closing edge from Tour[len-1]
	// back to Tour[0] is implicit. For a partial tour (Complete==false)
	// it is the visited prefix.
	Tour []int

	// Cost is the cyclic cost of Tour including the wraparound edge.
	// It may be +Inf for a partial tour whose closing edge is missing.
	Cost float64

	// Complete reports whether Tour visits every node exactly once.
	Complete bool

	// Visited is the number of distinct nodes in Tour. Equals n for a
	// complete tour; smaller when nearest-neighbor terminated early.
	Visited int

	// Algorithm identifies the solver that actually produced the tour.
	// It may differ from Options.Algo when the exact solver's opt-in
	// fallback substituted the heuristic.
	Algorithm Algorithm
}
