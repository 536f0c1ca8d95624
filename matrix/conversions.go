// SPDX-License-Identifier: MIT
// Package matrix - conversions between Dense, CSR and any Matrix.
//
// Round-trip guarantee:
//   - ToDense(ToSparse(M)) equals M exactly: zeros are dropped by ToSparse and
//     restored by the zero-filled ToDense buffer.

package matrix

const (
	opToSparse    = "ToSparse"
	opNewCSR      = "NewCSR"
	opToDenseFrom = "ToDenseFrom"
)

// ToSparse compresses m into CSR form, skipping entries equal to zero.
// Implementation:
//   - Stage 1: validate m (ErrNilMatrix).
//   - Stage 2: one row-major scan; every non-zero appends (value, column),
//     rowPtr[i+1] is the running count after row i.
//
// Notes:
//   - NaN is not equal to zero and is stored; -0.0 equals zero and is dropped.
//
// Complexity:
//   - Time O(r*c), Space O(nnz + r).
func ToSparse[T Number](m *Dense[T]) (*CSR[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToSparse, err)
	}
	s := &CSR[T]{
		rows:   m.r,
		cols:   m.c,
		rowPtr: make([]int, m.r+1),
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if v := m.data[base+j]; v != 0 {
				s.val = append(s.val, v)
				s.colIdx = append(s.colIdx, j)
			}
		}
		s.rowPtr[i+1] = len(s.val)
	}

	return s, nil
}

// ToDense expands s into a zero-filled Dense and scatters the stored entries.
// The owning row of entry n is found by walking the rowPtr boundaries, so
// empty rows (rowPtr[i] == rowPtr[i+1]) are stepped over.
//
// A zero-value CSR has no shape and yields nil.
//
// Complexity:
//   - Time O(r*c + nnz), Space O(r*c).
func (s *CSR[T]) ToDense() *Dense[T] {
	if s.empty() {
		return nil
	}
	out := make([]T, s.rows*s.cols)
	i := 0
	for n, v := range s.val {
		for n >= s.rowPtr[i+1] {
			i++
		}
		out[i*s.cols+s.colIdx[n]] = v
	}

	return newDenseUnchecked(s.rows, s.cols, out)
}

// NewCSR builds a CSR directly from a literal grid (see New for the grid rules).
func NewCSR[T Number](grid [][]T) (*CSR[T], error) {
	d, err := New(grid)
	if err != nil {
		return nil, matrixErrorf(opNewCSR, err)
	}

	return ToSparse(d)
}

// ToDenseFrom materializes any Matrix as a fresh Dense.
// *Dense is cloned, *CSR expanded, anything else read through At.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, or an At error from a foreign implementation.
func ToDenseFrom[T Number](m Matrix[T]) (*Dense[T], error) {
	if isNilMatrix(m) {
		return nil, matrixErrorf(opToDenseFrom, ErrNilMatrix)
	}
	switch v := m.(type) {
	case *Dense[T]:
		return v.Clone(), nil
	case *CSR[T]:
		if v.empty() {
			return nil, matrixErrorf(opToDenseFrom, ErrInvalidDimensions)
		}
		return v.ToDense(), nil
	}

	out, err := NewDense[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opToDenseFrom, err)
	}
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToDenseFrom, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
