// Package tsp solves the Travelling Salesman Problem exactly with the
// Held–Karp dynamic-programming algorithm over node subsets.
//
// The input is an n×n distance matrix (3 ≤ n ≤ MaxNodes, not
// necessarily symmetric) and a start node. The solver returns the cheapest Hamiltonian
// cycle that leaves the start, visits every other node exactly once and
// returns.
//
//   - Complexity: O(n²·2ⁿ)
//   - Memory:     O(n·2ⁿ), one flat table indexed node*2ⁿ + subset.
//   - Diagonal entries are never read.
//   - A distance of math.Inf(1) means "no direct edge"; if no tour survives,
//     the solver reports ErrIncompleteGraph.
//
// Subsets are processed by size, r = 3..n, so every state only reads the
// previous, finished layer. WithWorkers spreads one layer across goroutines.
//
// BruteForce tries all (n−1)! orderings and exists as a reference for small n.
// TourCost and ValidateTour check tours produced by any solver.
package tsp
