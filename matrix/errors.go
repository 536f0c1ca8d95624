// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for nonsensical Option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added with matrixErrorf/denseErrorf,
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> axis -> shape/degenerate -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive
	// (a degenerate 0×N or N×0 shape).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Error-returning indexers (At/Set/Row) return this; Get/Ref report ok=false.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add of different shapes or Concat along a mismatched axis.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadAxis indicates an Axis value the operation does not accept.
	ErrBadAxis = errors.New("matrix: invalid axis")

	// ErrNotVector indicates that a 1×N or N×1 operand was required.
	ErrNotVector = errors.New("matrix: operand is not a vector")

	// ErrBadRange indicates invalid interval bounds (NaN, or lo > hi / lo >= hi).
	ErrBadRange = errors.New("matrix: invalid range bounds")
)

// Refinements of ErrDimensionMismatch. errors.Is matches both the refined
// sentinel and ErrDimensionMismatch.
var (
	// ErrInnerMismatch is returned by Mul/SpMV when a.Cols() != b.Rows().
	ErrInnerMismatch = fmt.Errorf("%w: inner dimensions differ", ErrDimensionMismatch)

	// ErrReshapeSize is returned by Reshape/AsShape when rows*cols changes.
	ErrReshapeSize = fmt.Errorf("%w: element count differs", ErrDimensionMismatch)
)

// ErrIndexOutOfBounds is the IndexOutOfBounds name for ErrOutOfRange; both
// refer to the same sentinel, so errors.Is matches either.
var ErrIndexOutOfBounds = ErrOutOfRange

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
