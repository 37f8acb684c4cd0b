// Package builder generates dense cost matrices for the subset solvers.
//
// The constructors here are sample-input producers: random complete graphs
// (directed or symmetric), ring distances, Euclidean point sets, a planted
// optimal tour, and paired points with a known optimal matching. They are
// used by tests, benchmarks and examples and are deterministic for a fixed seed.
//
// Every constructor returns a *matrix.Dense with a zero diagonal.
package builder
