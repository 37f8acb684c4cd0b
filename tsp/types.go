package tsp

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/subsetdp/bitset"
)

// MaxNodes is the largest n New accepts. The memo holds n·2ⁿ cells indexed by
// int, which caps n at 32 on 64-bit platforms and at 26 on 32-bit ones.
const MaxNodes = min(bitset.MaxNodes, bits.UintSize-6)

// ErrInvalidArgument is the umbrella for every construction-time rejection.
// Each specific sentinel below wraps it.
var ErrInvalidArgument = errors.New("tsp: invalid argument")

var (
	// ErrNilMatrix is returned when the distance matrix is nil.
	ErrNilMatrix = fmt.Errorf("%w: distance matrix is nil", ErrInvalidArgument)

	// ErrTooSmall is returned for n ≤ 2.
	ErrTooSmall = fmt.Errorf("%w: n <= 2 not yet supported", ErrInvalidArgument)

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = fmt.Errorf("%w: matrix must be square (n x n)", ErrInvalidArgument)

	// ErrStartOutOfRange is returned when start ∉ [0, n).
	ErrStartOutOfRange = fmt.Errorf("%w: invalid start node", ErrInvalidArgument)

	// ErrTooLarge is returned for n > MaxNodes.
	ErrTooLarge = fmt.Errorf("%w: matrix too large for O(n²·2ⁿ) time and O(n·2ⁿ) space", ErrInvalidArgument)

	// ErrInvalidCost is returned when an off-diagonal distance is NaN or −Inf.
	ErrInvalidCost = fmt.Errorf("%w: distance must be finite or +Inf", ErrInvalidArgument)
)

// ErrIncompleteGraph is returned when the distance matrix does not admit any
// Hamiltonian cycle (every candidate uses a +Inf edge).
var ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

// ErrDimensionMismatch is returned by the tour utilities for tours whose
// length, closure or vertex set does not fit the matrix.
var ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at the start node.
	// For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n] == start.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}
