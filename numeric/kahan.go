// Package numeric collects the small, dependency-free numerical kernels the
// simplex core leans on repeatedly: compensated summation, safe wrappers
// around math functions that must never propagate NaN/Inf silently, and an
// introsort used for index ordering (CSC column sort when building from
// triplets).
//
// These mirror the role the teacher's blas subpackage plays for
// james-bowman/sparse: small, single-purpose numeric primitives with no
// preconditions checked beyond panic-on-violation, left to the caller.
package numeric

import "math"

// KahanSum returns the sum of v using Kahan compensated summation: a second
// accumulator (c) tracks the low-order bits lost to rounding at each step
// and feeds them back in, bounding relative error to O(ε) regardless of
// vector length (naive accumulation is O(nε)).
func KahanSum(v []float64) float64 {
	sum, c := 0.0, 0.0
	for _, x := range v {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// KahanDot returns the Kahan-compensated dot product of a and b, which must
// be the same length.
func KahanDot(a, b []float64) float64 {
	sum, c := 0.0, 0.0
	for i := range a {
		p := a[i] * b[i]
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// SafeAbs returns |x|, treating NaN as 0 rather than propagating it — the
// solver never wants a single corrupted reduced cost to poison a
// max-magnitude scan.
func SafeAbs(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Abs(x)
}

// SafeFloor is math.Floor guarded against NaN/Inf, returning x unchanged in
// those cases since there is no meaningful floor.
func SafeFloor(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Floor(x)
}

// SafeSqrt returns sqrt(x) for x >= 0, and 0 for x < 0 (guards against tiny
// negative values produced by round-off in a quantity that is
// mathematically non-negative, e.g. a steepest-edge weight).
func SafeSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// SafeLog10 returns log10(x) for x > 0, and -Inf for x <= 0 matching
// math.Log10's own convention at x == 0, but never panics and never
// returns NaN for negative x (clamped to -Inf instead).
func SafeLog10(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return math.Log10(x)
}
