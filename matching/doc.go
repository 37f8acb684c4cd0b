// Package matching computes an exact minimum-weight perfect matching on a
// complete undirected graph by dynamic programming over node subsets.
//
// The input is an n×n symmetric cost matrix with n even and 2 ≤ n ≤ MaxNodes
// (32, or 30 where int is 32 bits wide).
// A perfect matching pairs every node with exactly one partner; the solver
// finds the pairing with the smallest total cost.
//
//   - Complexity: O(n²·2ⁿ) time.
//   - Memory:     O(2ⁿ) for the dp/history tables plus O(n²) pair tables.
//
// Usage:
//
//	s, err := matching.New(cost)
//	if err != nil { ... }
//	total := s.Cost()      // solves on first use, cached afterwards
//	pairs := s.Matching()  // positions (2i, 2i+1) form pair i
//
// The DP is practical up to n≈24 on a workstation; n up to MaxNodes is accepted
// but needs 2ⁿ table cells. For larger instances use a blossom-based solver.
package matching
