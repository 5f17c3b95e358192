// Package tourkit computes minimum-cost closed tours over small
// user-built city graphs.
//
// The repository is organized as two subpackages:
//
//	citygraph/ — mutable city/edge builder plus an immutable solve-time
//	             distance snapshot (+Inf encodes “no edge”).
//	tsp/       — the solver core: nearest-neighbor, a genetic
//	             metaheuristic, exact Held–Karp DP, and a dispatcher
//	             returning a uniform Solution or a typed sentinel error.
//
// Typical flow: author a graph with citygraph, freeze it with
// Snapshot(), then call tsp.Solve with an algorithm selector:
//
//	g := citygraph.New()
//	a, _ := g.AddCity("A", 0, 0)
//	b, _ := g.AddCity("B", 3, 4)
//	_ = g.Connect(a, b, 5)
//	sol, err := tsp.Solve(g.Snapshot(), tsp.DefaultOptions())
//
// The solver core is single-threaded, synchronous, and deterministic:
// the genetic engine draws from an explicit seedable random source, so
// a fixed seed reproduces tours bit-for-bit. Rendering, interactive
// authoring and report formatting live outside this module.
package tourkit
