// SPDX-License-Identifier: MIT
// Package matrix - canonical constructors for Dense matrices.
//
// Purpose:
//   - One place for every way a Dense comes into existence: literal grids,
//     flat buffers, vectors, constant fills, identity and diagonal layouts.
//   - Enforce the public shape contract (rows>0, cols>0, len==rows*cols)
//     before any allocation.
//
// Determinism:
//   - No randomness here; see random.go for the sampled constructors.

package matrix

import "fmt"

const (
	opNew        = "New"
	opFromSlice  = "FromSlice"
	opRowVector  = "NewRowVector"
	opColVector  = "NewColVector"
	opIdentity   = "Identity"
	opDiag       = "Diag"
	opDiagOf     = "DiagOf"
	opDiagRows   = "DiagRows"
	opDiagCols   = "DiagCols"
	opFill       = "Fill"
	opLikeShaped = "Like"
)

// New builds a Dense from a literal grid (grid[i] is row i). Values are copied.
// Implementation:
//   - Stage 1: require len(grid)>0 and len(grid[0])>0 (ErrInvalidDimensions).
//   - Stage 2: require every row to have len(grid[0]) entries (ErrDimensionMismatch).
//   - Stage 3: flatten row by row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](grid [][]T) (*Dense[T], error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	rows, cols := len(grid), len(grid[0])
	data := make([]T, 0, rows*cols)
	for i, row := range grid {
		if len(row) != cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
		data = append(data, row...)
	}

	return newDenseUnchecked(rows, cols, data), nil
}

// FromSlice builds a rows×cols Dense from a row-major flat buffer (copied).
//
// Errors:
//   - ErrInvalidDimensions for non-positive rows/cols.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func FromSlice[T Number](rows, cols int, data []T) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opFromSlice, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromSlice, ErrDimensionMismatch)
	}
	cp := make([]T, len(data))
	copy(cp, data)

	return newDenseUnchecked(rows, cols, cp), nil
}

// NewRowVector builds a 1×len(data) Dense (copied).
func NewRowVector[T Number](data []T) (*Dense[T], error) {
	if len(data) == 0 {
		return nil, matrixErrorf(opRowVector, ErrInvalidDimensions)
	}

	return FromSlice(1, len(data), data)
}

// NewColVector builds a len(data)×1 Dense (copied).
func NewColVector[T Number](data []T) (*Dense[T], error) {
	if len(data) == 0 {
		return nil, matrixErrorf(opColVector, ErrInvalidDimensions)
	}

	return FromSlice(len(data), 1, data)
}

// Zeros is NewDense under the name used alongside Ones/Identity.
func Zeros[T Number](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// Ones builds a rows×cols Dense filled with 1.
func Ones[T Number](rows, cols int) (*Dense[T], error) { return Fill[T](rows, cols, 1) }

// Fill builds a rows×cols Dense with every entry equal to v.
func Fill[T Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFill, err)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// ZerosLike allocates a zero matrix with the shape of m.
// The element type may differ from m's (shape-only dependency).
func ZerosLike[T, U Number](m *Dense[U]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLikeShaped, err)
	}

	return NewDense[T](m.r, m.c)
}

// OnesLike allocates a matrix of ones with the shape of m.
func OnesLike[T, U Number](m *Dense[U]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLikeShaped, err)
	}

	return Ones[T](m.r, m.c)
}

// Identity builds the n×n identity matrix.
// Complexity: O(n²) (zero-fill dominates).
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Diag builds a square matrix with values on the main diagonal.
func Diag[T Number](values []T) (*Dense[T], error) {
	n := len(values)
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m, nil
}

// DiagOf spreads a row or column vector onto the diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector.
func DiagOf[T Number](v *Dense[T]) (*Dense[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opDiagOf, err)
	}

	return Diag(v.data)
}

// DiagRows lays the rows of m out block-diagonally: the result is r × (r*c)
// and row i holds m's row i in columns [i*c, (i+1)*c), zeros elsewhere.
func DiagRows[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagRows, err)
	}
	width := m.r * m.c
	out, err := NewDense[T](m.r, width)
	if err != nil {
		return nil, matrixErrorf(opDiagRows, err)
	}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*width+i*m.c:i*width+(i+1)*m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out, nil
}

// DiagCols is the column-wise counterpart of DiagRows: the result is
// (r*c) × c with column j holding m's column j in rows [j*r, (j+1)*r).
// It is computed as Transpose(DiagRows(Transpose(m))); both transposes run
// through the resolved options.
func DiagCols[T Number](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagCols, err)
	}
	cfg := gatherOptions(opts...).exec()
	dr, err := DiagRows(transpose(m, cfg))
	if err != nil {
		return nil, matrixErrorf(opDiagCols, err)
	}

	return transpose(dr, cfg), nil
}
