// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse engines.
// This file intentionally contains ONLY type-level declarations (element
// constraints, the Axis selector and the read-only Matrix interface).
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element capability every Dense/CSR operation relies on:
// addition, subtraction, multiplication, division, ordering and a zero value.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts element types to IEEE-754 kinds. Transcendental maps,
// normalization and random constructors require it.
type Float interface {
	constraints.Float
}

// Axis selects the direction of a reduction or concatenation.
type Axis int

const (
	// AxisRow folds every row into one value (result is rows×1);
	// for Concat it stacks rows (b below a).
	AxisRow Axis = iota
	// AxisColumn folds every column into one value (result is 1×cols);
	// for Concat it appends columns (b right of a).
	AxisColumn
	// AxisBoth folds the whole matrix into a 1×1 result.
	AxisBoth
)

// String implements fmt.Stringer.
func (ax Axis) String() string {
	switch ax {
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	case AxisBoth:
		return "both"
	default:
		return fmt.Sprintf("Axis(%d)", int(ax))
	}
}

// valid reports whether ax is one of the declared selectors.
func (ax Axis) valid() bool { return ax >= AxisRow && ax <= AxisBoth }

// Matrix is the read-only surface shared by *Dense and *CSR.
// Generic helpers (AllClose, ToDenseFrom) accept it and take a flat-buffer
// fast path when the concrete type is *Dense.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for Dense and
// O(nnz(row)) for CSR.
type Matrix[T Number] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (T, error)
}
