// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors, Get/Ref report ok=false.
//   - Keep shape changes (Reshape) O(1): only r/c move, the buffer stays put.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Get/Ref: O(1); Row: O(1) (live slice);
//     Clone/AsShape/Col: O(r*c) or O(r).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxCol     = "Col"     // method tag used in error wrappers
	ctxReshape = "Reshape" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen      = "[\n"
	_fmtClose     = "]"
	_fmtRowOpen   = " [ "
	_fmtRowClose  = " ]\n"
	_fmtSep       = " "
	DefaultFormat = 4 // decimals used by String for float element types
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0 for every public constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is owned by one logical owner. Read-only operations may share it
// across goroutines; *InPlace methods and Set/Ref/Row writes need exclusive access.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for interface conformance.
var _ Matrix[float64] = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newDenseUnchecked wraps an existing buffer without validation.
// Callers guarantee rows>0, cols>0 and len(data)==rows*cols.
func newDenseUnchecked[T Number](rows, cols int, data []T) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: data}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

// IsScalar reports a 1×1 shape.
func (m *Dense[T]) IsScalar() bool { return m.r == 1 && m.c == 1 }

// IsRowVector reports a 1×N shape (a scalar is also a row vector).
func (m *Dense[T]) IsRowVector() bool { return m.r == 1 }

// IsColVector reports an N×1 shape (a scalar is also a column vector).
func (m *Dense[T]) IsColVector() bool { return m.c == 1 }

// IsVector reports a 1×N or N×1 shape.
func (m *Dense[T]) IsVector() bool { return m.r == 1 || m.c == 1 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Get is the bounds-checked read: ok is false (and v is zero) when (row, col)
// lies outside the matrix. It is the accessor to use when indices are not
// known to be valid.
func (m *Dense[T]) Get(row, col int) (v T, ok bool) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return v, false
	}

	return m.data[off], true
}

// Ref returns a pointer to the element at (row, col) for in-place updates,
// or (nil, false) when out of range. The pointer aliases the matrix buffer
// and stays valid for the lifetime of m (Reshape does not move storage).
func (m *Dense[T]) Ref(row, col int) (*T, bool) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, false
	}

	return &m.data[off], true
}

// Row returns row i as a live slice of the backing buffer (no copy).
// Writes through the slice are visible in m. Capacity is clipped to the row,
// so appends never spill into row i+1.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo := i * m.c

	return m.data[lo : lo+m.c : lo+m.c], nil
}

// Col returns a copy of column j (strided gather).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// RawData returns the live row-major buffer (no copy). Mutations are
// visible in m; the slice must not be resized.
func (m *Dense[T]) RawData() []T { return m.data }

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return newDenseUnchecked(m.r, m.c, m.Data())
}

// Reshape changes the shape in place without touching the buffer.
// Implementation:
//   - Stage 1: validate rows>0, cols>0 (ErrInvalidDimensions).
//   - Stage 2: require rows*cols == Len() (ErrReshapeSize).
//   - Stage 3: assign r, c.
//
// Behavior highlights:
//   - Row-major element order is preserved exactly; no allocation.
//   - On error the matrix is left untouched.
func (m *Dense[T]) Reshape(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return denseErrorf(ctxReshape, rows, cols, err)
	}
	if rows*cols != len(m.data) {
		return denseErrorf(ctxReshape, rows, cols, ErrReshapeSize)
	}
	m.r, m.c = rows, cols

	return nil
}

// AsShape returns a reshaped copy; m is not modified.
func (m *Dense[T]) AsShape(rows, cols int) (*Dense[T], error) {
	out := m.Clone()
	if err := out.Reshape(rows, cols); err != nil {
		return nil, err
	}

	return out, nil
}

// Equal reports identical shape and element-wise equality (NaN != NaN).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders the matrix as a fixed-precision grid:
//
//	[
//	 [ 1.0000 2.0000 ]
//	 [ 3.0000 4.0000 ]
//	]
//
// Float element types use DefaultFormat decimals; integers print exactly.
// Intended for diagnostics, not hot paths.
func (m *Dense[T]) String() string { return m.Format(DefaultFormat) }

// Format is String with an explicit number of decimals (ignored for integers).
func (m *Dense[T]) Format(prec int) string {
	if prec < 0 {
		prec = DefaultFormat
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(formatElem(m.data[base+j], prec))
		}
		b.WriteString(_fmtRowClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// formatElem prints one element according to its kind.
func formatElem[T Number](v T, prec int) string {
	switch {
	case isFloatKind[T]():
		return strconv.FormatFloat(float64(v), 'f', prec, bitSize[T]())
	case isSignedKind[T]():
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}

// GoString supports %#v with shape information.
func (m *Dense[T]) GoString() string {
	return fmt.Sprintf("matrix.Dense{r:%d, c:%d, data:%v}", m.r, m.c, m.data)
}
