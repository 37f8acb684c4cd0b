// Package builder provides weight distributions for generated cost matrices.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is returned by WeightFns that receive a nil RNG.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min. If rng is nil, yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min || math.IsNaN(min) || math.IsNaN(max) {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn returns a WeightFn sampling whole numbers uniformly in [0, maxValue).
// Integer weights keep sums exact, which makes cost-equality assertions safe.
// Panics if maxValue < 1. If rng is nil, yields DefaultEdgeWeight.
func IntegerWeightFn(maxValue int) WeightFn {
	if maxValue < 1 {
		panic(fmt.Sprintf("IntegerWeightFn: maxValue must be ≥ 1, got %d", maxValue))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(rng.Intn(maxValue))
	}
}
