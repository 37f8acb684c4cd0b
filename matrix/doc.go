// Package matrix holds the dense cost-matrix input shared by the subset solvers.
//
// It provides:
//
//   - Matrix, a small bounds-checked interface over a 2-D float64 grid.
//   - Dense, a row-major implementation, plus NewDenseFromRows for [][]float64 input.
//   - Flatten, which hands solvers a flat row-major copy (index i*n + j) so the
//     exponential DP loops never go through an interface call.
//   - Validators for shape, symmetry and numeric policy, all returning the
//     sentinels from errors.go.
//
// Matrices here are small (n ≤ 32 for the solvers), so every check is a plain
// O(n²) scan.
package matrix
