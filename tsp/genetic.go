// Package tsp - genetic metaheuristic over tour permutations.
//
// Engine shape:
//   - Representation: an individual is a permutation of 0..n-1; its
//     fitness is 1/(cost+1), monotonically decreasing in cyclic cost
//     (the +1 keeps the division defined at cost 0).
//   - Initialization: Population uniformly random permutations
//     (Fisher–Yates over the identity tour).
//   - Selection: tournament of TournamentSize individuals drawn
//     uniformly with replacement; the fittest becomes a parent.
//     Invoked twice per child, independently.
//   - Crossover: ordered crossover - copy a random contiguous segment
//     [start,end) verbatim from parent 1, then fill the remaining slots
//     in circular order from index end with parent 2's cities in their
//     relative order, skipping cities already placed.
//   - Mutation: a single Bernoulli trial per child (MutationRate);
//     on success two uniformly random positions are swapped.
//   - Elitism: the best individual observed across the whole run is
//     copied unchanged into slot 0 of every new generation.
//   - Termination: fixed Generations count, no early exit.
//
// Randomness contract: the engine draws exclusively from a private
// stream built from Options.Seed, so a fixed seed reproduces tours
// bit-for-bit. No wall-clock reseeding exists anywhere in the package.
//
// Complexity: O(Generations·Population·n) time, O(Population·n) space.
package tsp

import (
	"math"
	"math/rand"
)

// Genetic evolves tour permutations and returns the best individual
// ever observed. The result is always a complete permutation by
// construction; when even the best individual rides a missing edge
// (infinite cost) the instance admits no tour over existing edges and
// ErrNoHamiltonianCycle is returned instead.
func Genetic(o DistanceOracle, opts Options) (Solution, error) {
	if o == nil {
		return Solution{}, ErrNilOracle
	}
	n := o.Nodes()
	if n < 2 {
		return Solution{}, ErrTooFewNodes
	}
	if opts.Population < 2 || opts.Generations <= 0 || opts.TournamentSize <= 0 {
		return Solution{}, ErrBadOptions
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return Solution{}, ErrBadOptions
	}

	// Prefetch distances into a flat row-major buffer to keep interface
	// calls out of the evaluation loop.
	w := make([]float64, n*n)
	{
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				w[i*n+j] = o.Distance(i, j)
			}
		}
	}

	// cyclicCost prices a permutation including the wraparound edge.
	cyclicCost := func(perm []int) float64 {
		var (
			sum float64
			i   int
		)
		for i = 0; i < n; i++ {
			sum += w[perm[i]*n+perm[(i+1)%n]]
		}

		return sum
	}
	fitnessOf := func(perm []int) float64 {
		return 1.0 / (cyclicCost(perm) + 1.0) // 0 when the cost is +Inf
	}

	var (
		rng  = rngFromSeed(opts.Seed)
		pop  = opts.Population
		curP = makePerms(pop, n)
		nxtP = makePerms(pop, n)
		curF = make([]float64, pop)
		nxtF = make([]float64, pop)
	)

	// Stage 1: initial population of uniformly random permutations.
	var i int
	for i = 0; i < pop; i++ {
		identityPerm(curP[i])
		shuffleIntsInPlace(curP[i], rng)
		curF[i] = fitnessOf(curP[i])
	}

	// Best-ever tracking (elitism source), seeded from the initial pool.
	var (
		bestPerm = make([]int, n)
		bestFit  = curF[0]
	)
	copy(bestPerm, curP[0])
	for i = 1; i < pop; i++ {
		if curF[i] > bestFit {
			bestFit = curF[i]
			copy(bestPerm, curP[i])
		}
	}

	// Scratch buffers reused across generations.
	var (
		used    = make([]bool, n)
		parent1 []int
		parent2 []int
		child   []int
		gen     int
	)

	// Stage 2: evolution, fixed generation count.
	for gen = 0; gen < opts.Generations; gen++ {
		// Elitism: the best-ever individual takes slot 0 unchanged.
		copy(nxtP[0], bestPerm)
		nxtF[0] = bestFit

		for i = 1; i < pop; i++ {
			parent1 = curP[tournamentSelect(curF, opts.TournamentSize, rng)]
			parent2 = curP[tournamentSelect(curF, opts.TournamentSize, rng)]

			child = nxtP[i]
			orderedCrossover(parent1, parent2, child, used, rng)

			// Single Bernoulli trial per individual, not per gene.
			if rng.Float64() < opts.MutationRate {
				a := rng.Intn(n)
				b := rng.Intn(n)
				child[a], child[b] = child[b], child[a]
			}

			nxtF[i] = fitnessOf(child)
			if nxtF[i] > bestFit {
				bestFit = nxtF[i]
				copy(bestPerm, child)
			}
		}

		curP, nxtP = nxtP, curP
		curF, nxtF = nxtF, curF
	}

	// Stage 3: finalize. Recompute through the strict path so the
	// reported cost matches an independent TourCost verification.
	cost, err := TourCost(o, bestPerm)
	if err != nil {
		return Solution{}, err
	}
	if math.IsInf(cost, 1) {
		// A full permutation exists, but not over existing edges.
		return Solution{}, ErrNoHamiltonianCycle
	}

	return Solution{
		Tour:      CopyTour(bestPerm),
		Cost:      cost,
		Complete:  true,
		Visited:   n,
		Algorithm: AlgGenetic,
	}, nil
}

// makePerms allocates count permutation slots of length n over a single
// backing array.
func makePerms(count, n int) [][]int {
	backing := make([]int, count*n)
	perms := make([][]int, count)
	for i := 0; i < count; i++ {
		perms[i] = backing[i*n : (i+1)*n]
	}

	return perms
}

// tournamentSelect draws size individuals uniformly with replacement
// and returns the index of the fittest.
//
// Complexity: O(size).
func tournamentSelect(fitness []float64, size int, rng *rand.Rand) int {
	var (
		best    = rng.Intn(len(fitness))
		bestFit = fitness[best]
		cand    int
		i       int
	)
	for i = 1; i < size; i++ {
		cand = rng.Intn(len(fitness))
		if fitness[cand] > bestFit {
			best = cand
			bestFit = fitness[cand]
		}
	}

	return best
}

// orderedCrossover writes into child the ordered-crossover offspring of
// p1 and p2:
//
//  1. Pick a random segment [start,end) with 1 ≤ end-start ≤ n-start.
//  2. Copy p1[start:end] verbatim into the same child positions.
//  3. Walk p2 circularly from index end; append every city not already
//     placed, filling child positions circularly from index end.
//
// The used marker slice must have length n; it is reset here.
//
// Complexity: O(n).
func orderedCrossover(p1, p2, child []int, used []bool, rng *rand.Rand) {
	n := len(p1)

	var i int
	for i = 0; i < n; i++ {
		used[i] = false
	}

	// Non-empty segment: start ∈ [0,n), end ∈ (start, n].
	var (
		start = rng.Intn(n)
		end   = start + 1 + rng.Intn(n-start)
	)

	for i = start; i < end; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	// Circular fill from end: the remaining n-(end-start) positions are
	// exactly the indices end..start-1 (mod n), so the write cursor
	// never re-enters the copied segment.
	var (
		pos  = end % n
		gene int
	)
	for i = 0; i < n; i++ {
		gene = p2[(end+i)%n]
		if used[gene] {
			continue
		}
		child[pos] = gene
		used[gene] = true
		pos = (pos + 1) % n
	}
}
