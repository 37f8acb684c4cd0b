package matching

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/subsetdp/bitset"
)

// MaxNodes is the largest n New accepts: the DP tables hold 2ⁿ cells, so the
// cap is 32 where int is 64 bits wide and 30 on 32-bit platforms.
const MaxNodes = min(bitset.MaxNodes, bits.UintSize-2)

// ErrInvalidArgument is the umbrella for every construction-time rejection.
// Each specific sentinel below wraps it, so errors.Is(err, ErrInvalidArgument)
// holds for all of them.
var ErrInvalidArgument = errors.New("matching: invalid argument")

var (
	// ErrNilMatrix is returned when the cost matrix is nil.
	ErrNilMatrix = fmt.Errorf("%w: cost matrix is nil", ErrInvalidArgument)

	// ErrEmptyMatrix is returned for a 0×0 cost matrix.
	ErrEmptyMatrix = fmt.Errorf("%w: matrix size is zero", ErrInvalidArgument)

	// ErrNonSquare is returned when the cost matrix is not n×n.
	ErrNonSquare = fmt.Errorf("%w: matrix must be square (n x n)", ErrInvalidArgument)

	// ErrOddSize is returned for odd n.
	ErrOddSize = fmt.Errorf("%w: matrix has an odd size, no perfect matching exists", ErrInvalidArgument)

	// ErrTooLarge is returned for n > MaxNodes.
	ErrTooLarge = fmt.Errorf("%w: matrix too large for O(n²·2ⁿ) time and O(2ⁿ) space", ErrInvalidArgument)

	// ErrAsymmetric is returned when cost[i][j] and cost[j][i] differ beyond tolerance.
	ErrAsymmetric = fmt.Errorf("%w: cost matrix is not symmetric", ErrInvalidArgument)

	// ErrInvalidCost is returned when an off-diagonal cost is NaN or ±Inf.
	ErrInvalidCost = fmt.Errorf("%w: cost must be finite", ErrInvalidArgument)
)
