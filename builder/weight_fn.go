// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// weight_fn.go - edge weight generators.
//
// Spanning-tree fixtures care about two things: whether weights tie (to probe
// the stable tie-break) and whether they are unique (so the optimum is unique
// and trees can be compared edge by edge). IntWeightFn gives the former,
// UniformWeightFn the latter with probability 1.
//
// Negative weights are legal for both spanning-tree modes, so generators only
// reject empty ranges and NaN parameters. Generators fall back to
// DefaultEdgeWeight when no rng is configured.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces the next edge weight from an optional rng.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) {
		panic("ConstantWeightFn: value is NaN")
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly from [min, max).
// Panics if either bound is NaN or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsNaN(max) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Float64()*span
	}
}

// IntWeightFn samples integers uniformly from [min, max] and returns them as
// float64. Small ranges produce many ties.
// Panics if max < min.
func IntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn samples from N(mean, stddev) without clipping.
// Panics if stddev < 0 or any parameter is NaN.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if math.IsNaN(mean) || math.IsNaN(stddev) || stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: require stddev ≥ 0, got mean=%g, stddev=%g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// SequenceWeightFn replays values in order and wraps around. It ignores the
// rng, which makes hand-written scenarios reproducible without a seed.
// The returned WeightFn is stateful and not safe for concurrent use.
// Panics if values is empty or holds a NaN.
func SequenceWeightFn(values ...float64) WeightFn {
	if len(values) == 0 {
		panic("SequenceWeightFn: no values")
	}
	for i, v := range values {
		if math.IsNaN(v) {
			panic(fmt.Sprintf("SequenceWeightFn: values[%d] is NaN", i))
		}
	}
	seq := append([]float64(nil), values...)
	next := 0

	return func(_ *rand.Rand) float64 {
		w := seq[next]
		next = (next + 1) % len(seq)

		return w
	}
}

// WithConstantWeight sets every edge weight to w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights from U[min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight draws integer-valued weights from [min, max].
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntWeightFn(min, max))
}

// WithNormalWeight draws weights from N(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithWeightSequence replays values as edge weights in emission order.
func WithWeightSequence(values ...float64) BuilderOption {
	return WithWeightFn(SequenceWeightFn(values...))
}
