// SPDX-License-Identifier: MIT
// Package matrix - element-wise maps over IEEE-754 element types.
//
// Every function here is a thin facade over ewUnary with a math.* kernel:
// values are converted to float64, mapped and converted back, so float32
// matrices get float64-accurate results rounded once. Domain errors follow
// IEEE-754 (Log of a negative value yields NaN, Log(0) yields -Inf); they
// are data, not Go errors.

package matrix

import "math"

const (
	opMap  = "Map"
	opPow  = "Pow"
	opWrap = "Wrap"
)

// mapFloat lifts a float64 kernel to T and runs it through ewUnary.
func mapFloat[T Float](m *Dense[T], f func(float64) float64, opts []Option) (*Dense[T], error) {
	return unary(m, func(v T) T { return T(f(float64(v))) }, opMap, opts)
}

// Exp returns e^m element-wise.
func Exp[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Exp, opts)
}

// Log returns the natural logarithm element-wise.
func Log[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Log, opts)
}

// Log2 returns the base-2 logarithm element-wise.
func Log2[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Log2, opts)
}

// Log10 returns the base-10 logarithm element-wise.
func Log10[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Log10, opts)
}

// Sqrt returns √m element-wise (NaN for negative entries).
func Sqrt[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Sqrt, opts)
}

// Pow raises every entry to p.
func Pow[T Float](m *Dense[T], p float64, opts ...Option) (*Dense[T], error) {
	return unary(m, func(v T) T { return T(math.Pow(float64(v), p)) }, opPow, opts)
}

// Sin returns the sine of every entry (radians).
func Sin[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Sin, opts)
}

// Cos returns the cosine of every entry (radians).
func Cos[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Cos, opts)
}

// Tan returns the tangent of every entry (radians).
func Tan[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Tan, opts)
}

// Asin returns the arcsine element-wise (NaN outside [-1, 1]).
func Asin[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Asin, opts)
}

// Acos returns the arccosine element-wise (NaN outside [-1, 1]).
func Acos[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Acos, opts)
}

// Atan returns the arctangent element-wise.
func Atan[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Atan, opts)
}

// Sinh returns the hyperbolic sine element-wise.
func Sinh[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Sinh, opts)
}

// Cosh returns the hyperbolic cosine element-wise.
func Cosh[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Cosh, opts)
}

// Tanh returns the hyperbolic tangent element-wise.
func Tanh[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Tanh, opts)
}

// Sigmoid returns 1 / (1 + e^-v) element-wise.
func Sigmoid[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, sigmoid, opts)
}

// Step returns 1 where v > 0 and 0 elsewhere (including NaN).
func Step[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, step, opts)
}

// ReLU returns max(v, 0) element-wise. NaN stays NaN.
func ReLU[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, relu, opts)
}

// Floor rounds every entry toward -Inf.
func Floor[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Floor, opts)
}

// Ceil rounds every entry toward +Inf.
func Ceil[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Ceil, opts)
}

// Round rounds half away from zero (math.Round).
func Round[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return mapFloat(m, math.Round, opts)
}

// Wrap folds every entry into the half-open interval [lo, hi):
//
//	lo + mod(v-lo, hi-lo)
//
// with a non-negative modulus, so Wrap(-1, 0, 360) == 359.
//
// Errors:
//   - ErrBadRange when lo >= hi or either bound is not finite.
func Wrap[T Float](m *Dense[T], lo, hi float64, opts ...Option) (*Dense[T], error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, matrixErrorf(opWrap, ErrBadRange)
	}
	width := hi - lo

	return unary(m, func(v T) T {
		r := math.Mod(float64(v)-lo, width)
		if r < 0 {
			r += width
		}
		// r+width can round up to width for tiny negative r.
		if r >= width {
			r = 0
		}
		// Narrow element types may round lo+r up to hi.
		if out := T(lo + r); out < T(hi) {
			return out
		}
		return T(lo)
	}, opWrap, opts)
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func step(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

func relu(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
