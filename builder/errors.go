// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n (or a point/pair count) is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidTour indicates that a planted tour is not a closed permutation of 0..n-1.
var ErrInvalidTour = errors.New("builder: invalid planted tour")

// ErrInvalidWeight indicates a NaN or ±Inf weight argument.
var ErrInvalidWeight = errors.New("builder: invalid weight")

// builderErrorf tags err with the constructor name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format, args...)
}
