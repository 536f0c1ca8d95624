// SPDX-License-Identifier: MIT
// Package matrix - matrix multiplication engine.
//
// Purpose:
//   - One entry point (Mul) that classifies the operand shapes and routes to
//     the cheapest kernel: scalar product, scalar broadcast, dot product,
//     row×matrix, matrix×column, outer product or the general product.
//   - Every output entry that involves a summation is computed by dot: a
//     left-to-right fold over the inner dimension. The fan-out only decides
//     which goroutine computes which entries, so sequential and parallel
//     results are bit-identical.
//
// Notes:
//   - A 1×1 operand is treated as a scalar and broadcast over the other
//     operand before the inner-dimension check: [[2]] × (3×4) is a 3×4
//     scaled copy, not an ErrInnerMismatch.
//   - B is transposed once up front for the row×matrix and general paths so
//     the inner loop walks two contiguous rows.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/internal/parallel"
)

const (
	opMul    = "Mul"
	opMulVec = "MulVec"
	opDot    = "Dot"
)

// Path names the kernel Mul selects for a pair of shapes.
type Path uint8

const (
	// PathScalar: 1×1 × 1×1.
	PathScalar Path = iota
	// PathBroadcast: one operand is 1×1 and scales the other.
	PathBroadcast
	// PathDot: 1×N × N×1, a single dot product.
	PathDot
	// PathRowMatrix: 1×N × N×M.
	PathRowMatrix
	// PathMatrixCol: M×N × N×1.
	PathMatrixCol
	// PathOuter: N×1 × 1×M, products only, no summation.
	PathOuter
	// PathGeneral: everything else.
	PathGeneral
)

// String implements fmt.Stringer.
func (p Path) String() string {
	switch p {
	case PathScalar:
		return "scalar"
	case PathBroadcast:
		return "broadcast"
	case PathDot:
		return "dot"
	case PathRowMatrix:
		return "row-matrix"
	case PathMatrixCol:
		return "matrix-column"
	case PathOuter:
		return "outer"
	case PathGeneral:
		return "general"
	default:
		return fmt.Sprintf("Path(%d)", uint8(p))
	}
}

// MulPath reports which kernel Mul would use for a×b without computing it.
//
// Errors:
//   - ErrNilMatrix, ErrInnerMismatch (same conditions as Mul).
func MulPath[T Number](a, b *Dense[T]) (Path, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf(opMul, err)
	}

	return classify(a, b)
}

// classify applies the shape rules in priority order. Operands are non-nil.
func classify[T Number](a, b *Dense[T]) (Path, error) {
	switch {
	case a.IsScalar() && b.IsScalar():
		return PathScalar, nil
	case a.IsScalar() || b.IsScalar():
		return PathBroadcast, nil
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return 0, matrixErrorf(opMul, err)
	}
	switch {
	case a.r == 1 && b.c == 1:
		return PathDot, nil
	case a.r == 1:
		return PathRowMatrix, nil
	case b.c == 1:
		return PathMatrixCol, nil
	case a.c == 1 && b.r == 1:
		return PathOuter, nil
	default:
		return PathGeneral, nil
	}
}

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: validate non-nil operands.
//   - Stage 2: classify the shapes (see Path); 1×1 operands broadcast before
//     the inner-dimension check.
//   - Stage 3: run the selected kernel through the fork-join strategy.
//
// Errors:
//   - ErrNilMatrix, ErrInnerMismatch (a.Cols() != b.Rows(), neither 1×1).
//
// Complexity:
//   - General path: Time O(r*n*m), Space O(r*m + n*m) (result plus Bᵀ).
//   - Vector paths: Time O(r*n) or O(n*m); outer product O(n*m).
func Mul[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	path, err := MulPath(a, b)
	if err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts...).exec()

	switch path {
	case PathScalar:
		return newDenseUnchecked(1, 1, []T{a.data[0] * b.data[0]}), nil
	case PathBroadcast:
		if a.IsScalar() {
			s := a.data[0]
			return ewUnary(b, func(v T) T { return s * v }, cfg), nil
		}
		s := b.data[0]
		return ewUnary(a, func(v T) T { return v * s }, cfg), nil
	case PathDot:
		return newDenseUnchecked(1, 1, []T{dot(a.data, b.data)}), nil
	case PathRowMatrix:
		return mulRowMatrix(a, b, cfg), nil
	case PathMatrixCol:
		return mulMatrixCol(a, b, cfg), nil
	case PathOuter:
		return mulOuter(a, b, cfg), nil
	default:
		return mulGeneral(a, b, cfg), nil
	}
}

// dot folds Σ x[k]*y[k] left to right. len(y) must be >= len(x).
func dot[T Number](x, y []T) T {
	var s T
	y = y[:len(x)]
	for k, v := range x {
		s += v * y[k]
	}

	return s
}

// mulRowMatrix: a is 1×n, b is n×m. out[j] = dot(a, column j of b).
func mulRowMatrix[T Number](a, b *Dense[T], cfg parallel.Config) *Dense[T] {
	n, m := b.r, b.c
	bt := transpose(b, cfg)
	out := make([]T, m)
	parallel.For(m, cfg.PerItem(n), func(lo, hi int) {
		for j := lo; j < hi; j++ {
			out[j] = dot(a.data, bt.data[j*n:(j+1)*n])
		}
	})

	return newDenseUnchecked(1, m, out)
}

// mulMatrixCol: a is r×n, b is n×1. out[i] = dot(row i of a, b).
func mulMatrixCol[T Number](a, b *Dense[T], cfg parallel.Config) *Dense[T] {
	r, n := a.r, a.c
	out := make([]T, r)
	parallel.For(r, cfg.PerItem(n), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = dot(a.data[i*n:(i+1)*n], b.data)
		}
	})

	return newDenseUnchecked(r, 1, out)
}

// mulOuter: a is n×1, b is 1×m. out[i,j] = a[i]*b[j]; fanned out by flat index.
func mulOuter[T Number](a, b *Dense[T], cfg parallel.Config) *Dense[T] {
	n, m := a.r, b.c
	out := make([]T, n*m)
	parallel.For(n*m, cfg, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			out[k] = a.data[k/m] * b.data[k%m]
		}
	})

	return newDenseUnchecked(n, m, out)
}

// mulGeneral: a is r×n, b is n×m. C[i,j] = dot(row i of a, row j of bᵀ),
// output rows fanned out.
func mulGeneral[T Number](a, b *Dense[T], cfg parallel.Config) *Dense[T] {
	r, n, m := a.r, a.c, b.c
	bt := transpose(b, cfg)
	out := make([]T, r*m)
	parallel.For(r, cfg.PerItem(n*m), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			arow := a.data[i*n : (i+1)*n]
			crow := out[i*m : (i+1)*m]
			for j := range crow {
				crow[j] = dot(arow, bt.data[j*n:(j+1)*n])
			}
		}
	})

	return newDenseUnchecked(r, m, out)
}

// MulVec computes y = m·x for a plain slice x (len(x) == Cols()).
// Returns a fresh slice of length Rows().
//
// Errors:
//   - ErrNilMatrix, ErrInnerMismatch.
func MulVec[T Number](m *Dense[T], x []T, opts ...Option) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMulVec, ErrInnerMismatch)
	}
	xv := newDenseUnchecked(len(x), 1, x)

	return mulMatrixCol(m, xv, gatherOptions(opts...).exec()).data, nil
}

// Dot returns Σ x[k]*y[k], folded left to right.
//
// Errors:
//   - ErrDimensionMismatch when the lengths differ.
func Dot[T Number](x, y []T) (T, error) {
	if len(x) != len(y) {
		var zero T
		return zero, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(x, y), nil
}
