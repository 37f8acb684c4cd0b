// Package bitset encodes node subsets as fixed-width bitmasks.
//
// A Mask of width n uses bit i to mark node i as included. Union, intersection
// and membership are single bitwise operations, popcount and lowest/highest
// bit extraction go through math/bits intrinsics. n is capped at MaxNodes (32):
// beyond that the 2ⁿ state tables of the subset solvers are not addressable.
//
// Combinations enumerates all masks of a given popcount, which is how the
// Held–Karp solver walks the subset lattice layer by layer.
package bitset
