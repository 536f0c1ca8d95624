// SPDX-License-Identifier: MIT
// Package matrix - compressed sparse row (CSR) storage and SpMV.
//
// Layout:
//   - val[n]    : n-th stored (non-zero) value, row-major scan order.
//   - colIdx[n] : column of val[n].
//   - rowPtr[i] : start of row i in val/colIdx; row i owns [rowPtr[i], rowPtr[i+1]).
//
// Invariants (established by every constructor in this package):
//   - len(rowPtr) == rows+1, rowPtr[0] == 0, rowPtr non-decreasing.
//   - rowPtr[rows] == len(val) == len(colIdx).
//   - Column indices inside one row are strictly increasing.
//
// A CSR is immutable after construction; accessors hand out copies.

package matrix

import "github.com/katalvlaran/lvmat/internal/parallel"

const (
	ctxCSRAt = "CSR.At"
	opSpMV   = "SpMV"
)

// CSR is a compressed sparse row matrix.
// Build one with ToSparse or NewCSR; the zero value holds no shape and is
// rejected by SpMV, ToDense and ToDenseFrom.
type CSR[T Number] struct {
	rows, cols int
	val        []T
	colIdx     []int
	rowPtr     []int
}

// Compile-time assertion for interface conformance.
var _ Matrix[float64] = (*CSR[float64])(nil)

// empty reports a CSR that did not come from a constructor.
func (s *CSR[T]) empty() bool { return len(s.rowPtr) == 0 }

// Rows returns the row count. Complexity: O(1).
func (s *CSR[T]) Rows() int { return s.rows }

// Cols returns the column count. Complexity: O(1).
func (s *CSR[T]) Cols() int { return s.cols }

// NNZ returns the number of stored entries.
func (s *CSR[T]) NNZ() int { return len(s.val) }

// Values returns a copy of the stored values in row-major scan order.
func (s *CSR[T]) Values() []T { return append([]T(nil), s.val...) }

// ColIndices returns a copy of the column index array.
func (s *CSR[T]) ColIndices() []int { return append([]int(nil), s.colIdx...) }

// RowPtr returns a copy of the row pointer array (len Rows()+1).
func (s *CSR[T]) RowPtr() []int { return append([]int(nil), s.rowPtr...) }

// At returns the element at (i, j); entries that are not stored read as 0.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - O(nnz(row i)).
func (s *CSR[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return zero, denseErrorf(ctxCSRAt, i, j, ErrOutOfRange)
	}
	for n := s.rowPtr[i]; n < s.rowPtr[i+1]; n++ {
		if s.colIdx[n] == j {
			return s.val[n], nil
		}
	}

	return zero, nil
}

// SpMV computes the sparse matrix × dense column vector product s·v.
// Implementation:
//   - Stage 1: validate non-nil operands, a constructed s (ErrInvalidDimensions),
//     v.Cols()==1 (ErrNotVector) and
//     s.Cols()==v.Rows() (ErrInnerMismatch).
//   - Stage 2: out[i] = Σ val[n]*v[colIdx[n]] for n in row i, folded in
//     storage order; rows fanned out.
//
// Returns:
//   - a rows×1 Dense, row order preserved.
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows).
func SpMV[T Number](s *CSR[T], v *Dense[T], opts ...Option) (*Dense[T], error) {
	if s == nil {
		return nil, matrixErrorf(opSpMV, ErrNilMatrix)
	}
	if s.empty() {
		return nil, matrixErrorf(opSpMV, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opSpMV, err)
	}
	if v.c != 1 {
		return nil, matrixErrorf(opSpMV, ErrNotVector)
	}
	if s.cols != v.r {
		return nil, matrixErrorf(opSpMV, ErrInnerMismatch)
	}

	cfg := gatherOptions(opts...).exec()
	out := make([]T, s.rows)
	x := v.data
	parallel.For(s.rows, cfg.PerItem(max(1, len(s.val)/s.rows)), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var acc T
			for n := s.rowPtr[i]; n < s.rowPtr[i+1]; n++ {
				acc += s.val[n] * x[s.colIdx[n]]
			}
			out[i] = acc
		}
	})

	return newDenseUnchecked(s.rows, 1, out), nil
}
