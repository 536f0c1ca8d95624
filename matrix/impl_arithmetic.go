// SPDX-License-Identifier: MIT
// Package matrix - element-wise arithmetic on Dense operands.
//
// Every binary operation requires identical shapes (ErrDimensionMismatch,
// no implicit broadcasting) and is validated before any allocation or write,
// so a failing *InPlace call leaves the receiver untouched. Value forms
// return a fresh Dense; *InPlace forms mutate the receiver only.

package matrix

import (
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opHadamard  = "Hadamard"
	opDivElem   = "DivElem"
	opMaximum   = "Maximum"
	opMinimum   = "Minimum"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opScalarDiv = "ScalarDiv"
	opClamp     = "Clamp"
	opAbs       = "Abs"
	opApply     = "Apply"
)

// binary is the shared front half of every value-returning binary op.
func binary[T Number](a, b *Dense[T], op func(x, y T) T, tag string, opts []Option) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return ewBinary(a, b, op, gatherOptions(opts...).exec()), nil
}

// unary is the shared front half of every value-returning unary op.
func unary[T Number](m *Dense[T], f func(v T) T, tag string, opts []Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return ewUnary(m, f, gatherOptions(opts...).exec()), nil
}

// binaryInPlace is the shared front half of every *InPlace binary op.
func binaryInPlace[T Number](dst, src *Dense[T], op func(x, y T) T, tag string, opts []Option) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(tag, err)
	}
	ewBinaryInPlace(dst, src, op, gatherOptions(opts...).exec())

	return nil
}

// unaryInPlace is the shared front half of every *InPlace unary op.
func unaryInPlace[T Number](m *Dense[T], f func(v T) T, tag string, opts []Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	ewUnaryInPlace(m, f, gatherOptions(opts...).exec())

	return nil
}

func sub[T Number](x, y T) T { return x - y }
func mul[T Number](x, y T) T { return x * y }
func div[T Number](x, y T) T { return x / y }

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat pass over both buffers, fanned out in chunks.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Bandwidth-bound.
func Add[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return binary(a, b, add[T], opAdd, opts)
}

// Sub computes the element-wise difference C = A - B.
// Same contract as Add.
func Sub[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return binary(a, b, sub[T], opSub, opts)
}

// Hadamard computes the element-wise product (a ⊙ b).
// Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return binary(a, b, mul[T], opHadamard, opts)
}

// DivElem computes the element-wise quotient a[i,j] / b[i,j].
// Integer division by zero panics as in plain Go; floats follow IEEE-754.
func DivElem[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return binary(a, b, div[T], opDivElem, opts)
}

// Maximum computes the element-wise maximum; NaN on either side yields NaN.
func Maximum[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return binary(a, b, maxOf[T], opMaximum, opts)
}

// Minimum computes the element-wise minimum; NaN on either side yields NaN.
func Minimum[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return binary(a, b, minOf[T], opMinimum, opts)
}

// Neg returns -m.
func Neg[T Number](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return unary(m, func(v T) T { return -v }, opNeg, opts)
}

// Scale returns alpha*m. Scalar multiplication commutes, so this covers the
// scalar on either side of the product.
func Scale[T Number](m *Dense[T], alpha T, opts ...Option) (*Dense[T], error) {
	return unary(m, func(v T) T { return v * alpha }, opScale, opts)
}

// DivScalar returns m / alpha element-wise.
func DivScalar[T Number](m *Dense[T], alpha T, opts ...Option) (*Dense[T], error) {
	return unary(m, func(v T) T { return v / alpha }, opDivScalar, opts)
}

// ScalarDiv returns alpha / m element-wise.
func ScalarDiv[T Number](alpha T, m *Dense[T], opts ...Option) (*Dense[T], error) {
	return unary(m, func(v T) T { return alpha / v }, opScalarDiv, opts)
}

// Abs returns |m| element-wise.
func Abs[T Number](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return unary(m, absOf[T], opAbs, opts)
}

// Clamp limits every entry to [lo, hi]. NaN entries stay NaN.
//
// Errors:
//   - ErrBadRange when lo > hi or either bound is NaN.
func Clamp[T Number](m *Dense[T], lo, hi T, opts ...Option) (*Dense[T], error) {
	if isNaN(lo) || isNaN(hi) || lo > hi {
		return nil, matrixErrorf(opClamp, ErrBadRange)
	}

	return unary(m, func(v T) T {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}, opClamp, opts)
}

// Apply maps f over every entry into a fresh Dense. f must be pure: it runs
// concurrently on disjoint chunks unless WithSequential is given.
func Apply[T Number](m *Dense[T], f func(v T) T, opts ...Option) (*Dense[T], error) {
	return unary(m, f, opApply, opts)
}

// ---------- In-place forms (exclusive access to the receiver) ----------

// AddInPlace performs m += b.
func (m *Dense[T]) AddInPlace(b *Dense[T], opts ...Option) error {
	return binaryInPlace(m, b, add[T], opAdd, opts)
}

// SubInPlace performs m -= b.
func (m *Dense[T]) SubInPlace(b *Dense[T], opts ...Option) error {
	return binaryInPlace(m, b, sub[T], opSub, opts)
}

// HadamardInPlace performs m ⊙= b.
func (m *Dense[T]) HadamardInPlace(b *Dense[T], opts ...Option) error {
	return binaryInPlace(m, b, mul[T], opHadamard, opts)
}

// DivElemInPlace performs m /= b element-wise.
func (m *Dense[T]) DivElemInPlace(b *Dense[T], opts ...Option) error {
	return binaryInPlace(m, b, div[T], opDivElem, opts)
}

// NegInPlace performs m = -m.
func (m *Dense[T]) NegInPlace(opts ...Option) error {
	return unaryInPlace(m, func(v T) T { return -v }, opNeg, opts)
}

// ScaleInPlace performs m *= alpha.
func (m *Dense[T]) ScaleInPlace(alpha T, opts ...Option) error {
	return unaryInPlace(m, func(v T) T { return v * alpha }, opScale, opts)
}

// DivScalarInPlace performs m /= alpha.
func (m *Dense[T]) DivScalarInPlace(alpha T, opts ...Option) error {
	return unaryInPlace(m, func(v T) T { return v / alpha }, opDivScalar, opts)
}

// ApplyInPlace replaces every entry with f(v).
func (m *Dense[T]) ApplyInPlace(f func(v T) T, opts ...Option) error {
	return unaryInPlace(m, f, opApply, opts)
}

// ---------- Comparison ----------

// Equal reports identical shapes and exactly equal entries.
// Two nil matrices are equal; NaN is never equal to itself.
func Equal[T Number](a, b *Dense[T]) bool { return a.Equal(b) }

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Accepts any Matrix (Dense and CSR); *Dense pairs take a flat fast path.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadRange (NaN/Inf tolerance).
func AllClose[T Number](a, b Matrix[T], rtol, atol float64) (bool, error) {
	const tag = "AllClose"
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(tag, ErrBadRange)
	}
	if isNilMatrix(a) || isNilMatrix(b) {
		return false, matrixErrorf(tag, ErrNilMatrix)
	}
	ok, err := ewAllClose(a, b, math.Abs(rtol), math.Abs(atol))
	if err != nil {
		return false, matrixErrorf(tag, err)
	}

	return ok, nil
}

// AllCloseOpt is AllClose with rtol=0 and atol taken from WithEpsilon
// (DefaultEpsilon when absent).
func AllCloseOpt[T Number](a, b Matrix[T], opts ...Option) (bool, error) {
	return AllClose(a, b, 0, gatherOptions(opts...).eps)
}

// isNilMatrix catches both a nil interface and a typed nil pointer inside it.
func isNilMatrix[T Number](m Matrix[T]) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Dense[T]:
		return v == nil
	case *CSR[T]:
		return v == nil
	}

	return false
}
